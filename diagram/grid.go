package diagram

import (
	"strings"

	"github.com/boxwire/circuitry/coord"
)

// Grid is an immutable view of source text as lines of Unicode scalars,
// addressed by (line, column). Out-of-range access is reported via the
// ok return of At rather than a panic; callers treat absent cells as
// end-of-wire or whitespace per spec.
type Grid struct {
	lines [][]rune
}

// NewGrid splits source on line breaks into an ordered sequence of lines.
// Trailing carriage returns are stripped so sources copy-pasted from
// CRLF editors scan identically to LF sources.
//
// Complexity: O(n) in the length of source.
func NewGrid(source string) *Grid {
	rawLines := strings.Split(source, "\n")
	lines := make([][]rune, len(rawLines))
	for i, line := range rawLines {
		line = strings.TrimSuffix(line, "\r")
		lines[i] = []rune(line)
	}

	return &Grid{lines: lines}
}

// NumLines returns the number of lines in the grid.
func (g *Grid) NumLines() int {
	return len(g.lines)
}

// LineLength returns the number of Unicode scalars on the given line, or
// 0 if line is out of range.
func (g *Grid) LineLength(line int) int {
	if line < 0 || line >= len(g.lines) {
		return 0
	}

	return len(g.lines[line])
}

// At returns the character at p and whether p is within the grid. A
// position past the end of a line, on a negative line/column, or past
// the last line is reported as absent.
//
// Complexity: O(1).
func (g *Grid) At(p coord.Position) (rune, bool) {
	if p.Line < 0 || p.Line >= len(g.lines) {
		return 0, false
	}
	line := g.lines[p.Line]
	if p.Column < 0 || p.Column >= len(line) {
		return 0, false
	}

	return line[p.Column], true
}
