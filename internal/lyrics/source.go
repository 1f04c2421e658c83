package lyrics

import (
	"context"
	"strings"
)

// Source yields candidate lyrics. Implementations may return blank entries;
// Selector filters them.
type Source interface {
	Lyrics(ctx context.Context) ([]string, error)
}

// NonBlank drops entries that are empty after trimming. Kept entries are
// returned unchanged, embedded line breaks included.
func NonBlank(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}
