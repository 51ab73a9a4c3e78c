package diagram

import "github.com/boxwire/circuitry/coord"

// wireDirection computes the outgoing direction for a wire glyph given
// the incoming direction of travel, per spec §4.4's wire direction table.
// T-joints are handled separately by tJointArms; this table only covers
// straight segments, corners, and the pass-through cross.
func wireDirection(c rune, incoming coord.Direction) (coord.Direction, bool) {
	switch c {
	case glyphHorizontal:
		if incoming == coord.Left || incoming == coord.Right {
			return incoming, true
		}
	case glyphVertical:
		if incoming == coord.Up || incoming == coord.Down {
			return incoming, true
		}
	case glyphCross:
		return incoming, true
	case glyphCornerLR: // ┘
		switch incoming {
		case coord.Down:
			return coord.Left, true
		case coord.Right:
			return coord.Up, true
		}
	case glyphCornerLL: // └
		switch incoming {
		case coord.Down:
			return coord.Right, true
		case coord.Left:
			return coord.Up, true
		}
	case glyphCornerUL: // ┌
		switch incoming {
		case coord.Left:
			return coord.Down, true
		case coord.Up:
			return coord.Right, true
		}
	case glyphCornerUR: // ┐
		switch incoming {
		case coord.Right:
			return coord.Down, true
		case coord.Up:
			return coord.Left, true
		}
	}

	return 0, false
}

// tJointArms returns the full set of directions a T-joint glyph has open,
// per the convention fixed by spec §9: a T blocks the arm opposite its
// stem (┬ blocks Up, ┴ blocks Down, ├ blocks Left, ┤ blocks Right).
func tJointArms(c rune) []coord.Direction {
	switch c {
	case glyphTeeDown: // ┬: blocks Up
		return []coord.Direction{coord.Left, coord.Right, coord.Down}
	case glyphTeeUp: // ┴: blocks Down
		return []coord.Direction{coord.Left, coord.Right, coord.Up}
	case glyphTeeRight: // ├: blocks Left
		return []coord.Direction{coord.Up, coord.Down, coord.Right}
	case glyphTeeLeft: // ┤: blocks Right
		return []coord.Direction{coord.Up, coord.Down, coord.Left}
	default:
		return nil
	}
}

// boxDirection computes the outgoing direction for a box border glyph
// (including pin markers, which sit on the vertical edges) given the
// incoming direction of travel, per spec §4.4's box edge table.
func boxDirection(c rune, incoming coord.Direction) (coord.Direction, bool) {
	switch c {
	case glyphBoxH:
		if incoming == coord.Left || incoming == coord.Right {
			return incoming, true
		}
	case glyphBoxV, glyphPinIn, glyphPinOut:
		if incoming == coord.Up || incoming == coord.Down {
			return incoming, true
		}
	case glyphBoxLR: // ┛
		switch incoming {
		case coord.Down:
			return coord.Left, true
		case coord.Right:
			return coord.Up, true
		}
	case glyphBoxLL: // ┗
		switch incoming {
		case coord.Down:
			return coord.Right, true
		case coord.Left:
			return coord.Up, true
		}
	case glyphBoxUL: // ┏
		switch incoming {
		case coord.Left:
			return coord.Down, true
		case coord.Up:
			return coord.Right, true
		}
	case glyphBoxUR: // ┓
		switch incoming {
		case coord.Right:
			return coord.Down, true
		case coord.Up:
			return coord.Left, true
		}
	}

	return 0, false
}
