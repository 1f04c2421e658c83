// Package dispatch runs one lyric delivery: select a lyric, format it into
// a board grid, and push the grid to the display. Steps run in order and
// the first failure ends the run.
package dispatch

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/garrettladley/lyricboard/internal/board"
	"github.com/garrettladley/lyricboard/internal/client/vestaboard"
	"github.com/garrettladley/lyricboard/internal/lyrics"
	"github.com/garrettladley/lyricboard/internal/xerrors"
	"github.com/garrettladley/lyricboard/internal/xslog"
)

const (
	stepSelect = "select"
	stepFormat = "format"
	stepSend   = "send"
)

type Selector interface {
	Select(ctx context.Context) (lyrics.Selection, error)
}

type Formatter interface {
	Format(ctx context.Context, text string) (board.Grid, error)
}

type Display interface {
	Send(ctx context.Context, grid board.Grid) (*vestaboard.Ack, error)
	SendText(ctx context.Context, text string) (*vestaboard.Ack, error)
}

type Dispatcher struct {
	selector  Selector
	formatter Formatter
	display   Display
	newRunID  func() string
}

type Option func(*Dispatcher)

// WithRunIDFunc replaces the uuid run ID generator.
func WithRunIDFunc(fn func() string) Option {
	return func(d *Dispatcher) { d.newRunID = fn }
}

func New(selector Selector, formatter Formatter, display Display, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		selector:  selector,
		formatter: formatter,
		display:   display,
		newRunID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type Result struct {
	RunID  string
	Lyric  string
	Origin lyrics.Origin
	Grid   board.Grid
	Ack    *vestaboard.Ack
}

// Run selects, formats and sends. A failed step is logged with its context
// and returned; later steps do not run.
func (d *Dispatcher) Run(ctx context.Context) (*Result, error) {
	ctx, result := d.begin(ctx)
	start := time.Now()

	if err := d.prepare(ctx, result); err != nil {
		return nil, err
	}

	ack, err := d.display.Send(xslog.WithAttrs(ctx, xslog.Step(stepSend)), result.Grid)
	if err != nil {
		return nil, d.fail(ctx, stepSend, err)
	}
	result.Ack = ack

	xslog.FromContext(ctx).InfoContext(ctx, "lyric delivered",
		xslog.Lyric(result.Lyric),
		xslog.Source(string(result.Origin)),
		xslog.Duration(time.Since(start)))

	return result, nil
}

// Preview selects and formats without touching the display.
func (d *Dispatcher) Preview(ctx context.Context) (*Result, error) {
	ctx, result := d.begin(ctx)
	if err := d.prepare(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// SendText pushes text as-is through the display's own layout.
func (d *Dispatcher) SendText(ctx context.Context, text string) (*Result, error) {
	ctx, result := d.begin(ctx)

	if strings.TrimSpace(text) == "" {
		return nil, d.fail(ctx, stepSend, xerrors.Configuration(
			xerrors.WithOp(stepSend),
			xerrors.WithMessage("text is empty"),
		))
	}
	result.Lyric = text

	ack, err := d.display.SendText(xslog.WithAttrs(ctx, xslog.Step(stepSend)), text)
	if err != nil {
		return nil, d.fail(ctx, stepSend, err)
	}
	result.Ack = ack

	xslog.FromContext(ctx).InfoContext(ctx, "text delivered", xslog.Lyric(text))
	return result, nil
}

func (d *Dispatcher) begin(ctx context.Context) (context.Context, *Result) {
	result := &Result{RunID: d.newRunID()}
	return xslog.WithRunID(ctx, result.RunID), result
}

func (d *Dispatcher) prepare(ctx context.Context, result *Result) error {
	selection, err := d.selector.Select(xslog.WithAttrs(ctx, xslog.Step(stepSelect)))
	if err != nil {
		return d.fail(ctx, stepSelect, err)
	}
	result.Lyric = selection.Lyric
	result.Origin = selection.Origin

	xslog.FromContext(ctx).InfoContext(ctx, "selected lyric",
		xslog.Lyric(selection.Lyric),
		xslog.Source(string(selection.Origin)))

	grid, err := d.formatter.Format(xslog.WithAttrs(ctx, xslog.Step(stepFormat)), selection.Lyric)
	if err != nil {
		return d.fail(ctx, stepFormat, err)
	}
	result.Grid = grid
	return nil
}

func (d *Dispatcher) fail(ctx context.Context, step string, err error) error {
	xerrors.Log(xslog.WithAttrs(ctx, xslog.Step(step)), err)
	return err
}
