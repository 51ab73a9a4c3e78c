package diagram

import "github.com/boxwire/circuitry/coord"

func isLetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isTokenContinuation(c rune) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// textState is the two-state machine driving ScanText.
type textState uint8

const (
	stateJunk textState = iota
	stateText
)

// ScanText runs a two-state lexer over every line of g, extracting
// maximal runs matching [A-Za-z][A-Za-z0-9_]*. Tokens never cross line
// boundaries; the scanner does not special-case structural glyphs since
// by diagram convention letters never appear inside them.
//
// Complexity: O(n) in the total length of the source.
func ScanText(g *Grid) []TextNode {
	var tokens []TextNode
	for line := 0; line < g.NumLines(); line++ {
		width := g.LineLength(line)
		state := stateJunk
		tokenStart := 0
		var b []rune

		flush := func(end int) {
			if state == stateText {
				tokens = append(tokens, TextNode{
					Line:        line,
					ColumnStart: tokenStart,
					ColumnEnd:   end,
					Value:       string(b),
				})
			}
			b = nil
			state = stateJunk
		}

		for col := 0; col < width; col++ {
			c, _ := g.At(coord.Position{Line: line, Column: col})
			switch state {
			case stateJunk:
				if isLetter(c) {
					state = stateText
					tokenStart = col
					b = append(b, c)
				}
			case stateText:
				if isTokenContinuation(c) {
					b = append(b, c)
				} else {
					flush(col)
					if isLetter(c) {
						state = stateText
						tokenStart = col
						b = append(b, c)
					}
				}
			}
		}
		flush(width)
	}

	return tokens
}
