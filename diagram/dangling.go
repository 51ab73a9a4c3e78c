package diagram

import "github.com/boxwire/circuitry/coord"

// FindDanglingWires scans each line left to right and reports the
// positions of open horizontal wire stubs at the margins: a '─' whose
// predecessor is absent or non-structural is a dangling input, and a
// '─' whose successor is absent or non-structural is a dangling output.
// Both lists are returned in stable scan order (line-major, then
// column-major, since lines are scanned in order).
//
// Complexity: O(n) in the total length of the source.
func FindDanglingWires(g *Grid) (inputs, outputs []coord.Position) {
	for line := 0; line < g.NumLines(); line++ {
		width := g.LineLength(line)
		var prev rune
		prevOK := false
		for col := 0; col <= width; col++ {
			var cur rune
			curOK := false
			if col < width {
				cur, curOK = g.At(coord.Position{Line: line, Column: col})
			}

			if curOK && cur == glyphHorizontal && (!prevOK || !isStructuralGlyph(prev)) {
				inputs = append(inputs, coord.Position{Line: line, Column: col})
			}
			if prevOK && prev == glyphHorizontal && (!curOK || !isStructuralGlyph(cur)) {
				outputs = append(outputs, coord.Position{Line: line, Column: col - 1})
			}

			prev, prevOK = cur, curOK
		}
	}

	return inputs, outputs
}
