// Package board models the Vestaboard flagship display: a fixed grid of
// character codes.
package board

import (
	"fmt"
	"strings"

	go_json "github.com/goccy/go-json"
)

const (
	Rows = 6
	Cols = 22
)

// Grid is one full frame of the board, row-major.
type Grid [Rows][Cols]int

// Decode parses a JSON array of Rows arrays of Cols codes. Shape and code
// range are checked because fixed-size arrays would silently zero-fill a
// short payload.
func Decode(data []byte) (Grid, error) {
	var rows [][]int
	if err := go_json.Unmarshal(data, &rows); err != nil {
		return Grid{}, fmt.Errorf("decoding grid: %w", err)
	}
	return FromRows(rows)
}

func FromRows(rows [][]int) (Grid, error) {
	var g Grid
	if len(rows) != Rows {
		return g, fmt.Errorf("grid has %d rows, want %d", len(rows), Rows)
	}
	for r, row := range rows {
		if len(row) != Cols {
			return g, fmt.Errorf("grid row %d has %d columns, want %d", r, len(row), Cols)
		}
		for c, code := range row {
			if !ValidCode(code) {
				return g, fmt.Errorf("grid cell (%d,%d) has invalid code %d", r, c, code)
			}
			g[r][c] = code
		}
	}
	return g, nil
}

// Slice returns the grid as nested slices, the shape the wire format uses.
func (g Grid) Slice() [][]int {
	rows := make([][]int, Rows)
	for r := range g {
		rows[r] = append([]int(nil), g[r][:]...)
	}
	return rows
}

// Text renders the grid as plain text, one line per row, with trailing
// blanks trimmed. Color tiles render as a full block.
func (g Grid) Text() string {
	lines := make([]string, Rows)
	for r, row := range g {
		var b strings.Builder
		for _, code := range row {
			b.WriteRune(Char(code))
		}
		lines[r] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func (g Grid) String() string {
	return g.Text()
}
