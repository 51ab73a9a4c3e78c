package diagram

// Glyph sets from the diagram language (spec §6).
const (
	glyphHorizontal = '─'
	glyphVertical   = '│'
	glyphCornerUL   = '┌'
	glyphCornerUR   = '┐'
	glyphCornerLL   = '└'
	glyphCornerLR   = '┘'
	glyphTeeDown    = '┬'
	glyphTeeUp      = '┴'
	glyphTeeRight   = '├'
	glyphTeeLeft    = '┤'
	glyphCross      = '┼'

	glyphBoxUL   = '┏'
	glyphBoxUR   = '┓'
	glyphBoxLL   = '┗'
	glyphBoxLR   = '┛'
	glyphBoxH    = '━'
	glyphBoxV    = '┃'
	glyphPinIn   = '┨'
	glyphPinOut  = '┠'
)

// isWireGlyph reports whether c is one of the plain wire glyphs (straight,
// corner, T-joint, or cross) — not a box glyph or pin marker.
func isWireGlyph(c rune) bool {
	switch c {
	case glyphHorizontal, glyphVertical, glyphCornerUL, glyphCornerUR, glyphCornerLL, glyphCornerLR,
		glyphTeeDown, glyphTeeUp, glyphTeeRight, glyphTeeLeft, glyphCross:
		return true
	default:
		return false
	}
}

// isBoxGlyph reports whether c is a box border or corner glyph.
func isBoxGlyph(c rune) bool {
	switch c {
	case glyphBoxUL, glyphBoxUR, glyphBoxLL, glyphBoxLR, glyphBoxH, glyphBoxV:
		return true
	default:
		return false
	}
}

// isPinGlyph reports whether c is an input or output pin marker.
func isPinGlyph(c rune) bool {
	return c == glyphPinIn || c == glyphPinOut
}

// isStructuralGlyph reports whether c is any glyph the dangling-wire
// finder must treat as "not ordinary whitespace" (spec §4.2's S_struct).
func isStructuralGlyph(c rune) bool {
	return isWireGlyph(c) || isBoxGlyph(c) || isPinGlyph(c)
}

// isWireContinuation reports whether c continues a wire: a plain wire
// glyph or a pin marker (but not a box border glyph).
func isWireContinuation(c rune) bool {
	return isWireGlyph(c) || isPinGlyph(c)
}

// isTJoint reports whether c is one of the four T-joint glyphs.
func isTJoint(c rune) bool {
	switch c {
	case glyphTeeDown, glyphTeeUp, glyphTeeRight, glyphTeeLeft:
		return true
	default:
		return false
	}
}

// isBoxCorner reports whether c is one of the four box corner glyphs.
func isBoxCorner(c rune) bool {
	switch c {
	case glyphBoxUL, glyphBoxUR, glyphBoxLL, glyphBoxLR:
		return true
	default:
		return false
	}
}
