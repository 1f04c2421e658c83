package lyrics

import (
	"context"
	"math/rand/v2"

	"github.com/garrettladley/lyricboard/internal/xerrors"
	"github.com/garrettladley/lyricboard/internal/xslog"
)

type Origin string

const (
	OriginSheet  Origin = "sheet"
	OriginStatic Origin = "static"
)

type Selection struct {
	Lyric  string
	Origin Origin
}

// Selector picks one lyric uniformly at random. Primary is consulted first
// when set; an unreachable or empty primary falls back to Fallback.
type Selector struct {
	Primary  Source
	Fallback []string
	Rand     *rand.Rand
}

type Option func(*Selector)

func WithPrimary(src Source) Option {
	return func(s *Selector) { s.Primary = src }
}

func WithRand(r *rand.Rand) Option {
	return func(s *Selector) { s.Rand = r }
}

func NewSelector(fallback []string, opts ...Option) *Selector {
	s := &Selector{Fallback: fallback}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Selector) Select(ctx context.Context) (Selection, error) {
	pool, origin := s.Candidates(ctx)
	if len(pool) == 0 {
		return Selection{}, xerrors.Configuration(
			xerrors.WithOp("select"),
			xerrors.WithMessage("no lyrics available from any source"),
		)
	}
	return Selection{Lyric: pool[s.intN(len(pool))], Origin: origin}, nil
}

// Candidates returns the non-blank pool Select would draw from.
func (s *Selector) Candidates(ctx context.Context) ([]string, Origin) {
	logger := xslog.FromContext(ctx)

	if s.Primary != nil {
		rows, err := s.Primary.Lyrics(ctx)
		pool := NonBlank(rows)
		switch {
		case err != nil:
			logger.WarnContext(ctx, "lyric sheet unavailable, using static lyrics", xslog.Error(err))
		case len(pool) == 0:
			logger.WarnContext(ctx, "lyric sheet has no lyrics, using static lyrics", xslog.Rows(len(rows)))
		default:
			logger.DebugContext(ctx, "loaded lyric sheet", xslog.Rows(len(rows)), xslog.Candidates(len(pool)))
			return pool, OriginSheet
		}
	}

	return NonBlank(s.Fallback), OriginStatic
}

func (s *Selector) intN(n int) int {
	if s.Rand != nil {
		return s.Rand.IntN(n)
	}
	return rand.IntN(n)
}
