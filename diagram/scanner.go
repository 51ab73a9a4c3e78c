package diagram

import (
	"sort"

	"github.com/boxwire/circuitry/coord"
)

// defaultIterationCap bounds the structural scanner's worklist, per
// spec §4.4 ("a hard iteration cap (e.g. 10,000)").
const defaultIterationCap = 10000

// ScanOption configures the structural scanner.
type ScanOption func(*scanConfig)

type scanConfig struct {
	iterationCap int
}

func defaultScanConfig() scanConfig {
	return scanConfig{iterationCap: defaultIterationCap}
}

// WithIterationCap overrides the structural scanner's worklist cap.
// Values <= 0 are ignored and the default is kept.
func WithIterationCap(n int) ScanOption {
	return func(c *scanConfig) {
		if n > 0 {
			c.iterationCap = n
		}
	}
}

// scanMode is the structural scanner's per-symbol parsing mode (spec §3's
// ParsingMode).
type scanMode uint8

const (
	modeWire scanMode = iota
	modeBox
)

// boxWalk is the mutable state of one in-progress box border traversal.
// Each entry point into a box (one per connected pin) gets its own walk;
// ScanStructural deduplicates the resulting Box nodes by rectangle.
type boxWalk struct {
	start                        coord.Position
	cornersSeen                  map[rune]bool
	topLeft, bottomRight         coord.Position
	haveTopLeft, haveBottomRight bool
	inputs, outputs              []coord.Position
}

// symbol is one item of the structural scanner's worklist (spec §3).
// The character at pos is looked up fresh from the grid when the symbol
// is processed, rather than cached at push time, so the grid remains the
// single source of truth.
type symbol struct {
	pos       coord.Position
	dir       coord.Direction
	mode      scanMode
	wireStart coord.Position // valid when mode == modeWire
	box       *boxWalk       // valid when mode == modeBox
}

// ScanStructural runs the 2-D directed walker (spec §4.4) starting from
// one Symbol per dangling input, and returns the Wire and Box nodes it
// discovers. Box nodes reached from more than one pin are walked once
// per entry point and merged by rectangle so the result contains exactly
// one Box node per drawn rectangle. A wire whose pair of endpoints matches
// a wire already recorded (such as a pin's outward walk retracing the wire
// that reached the pin) is reported only once.
//
// Complexity: O(iterationCap) worklist steps in the worst case; each step
// does O(1) grid lookups.
func ScanStructural(g *Grid, danglingInputs []coord.Position, opts ...ScanOption) ([]Node, error) {
	cfg := defaultScanConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	queue := make([]symbol, 0, len(danglingInputs))
	for _, p := range danglingInputs {
		queue = append(queue, symbol{pos: p, dir: coord.Right, mode: modeWire, wireStart: p})
	}

	visited := make(map[coord.Position]coord.Position)
	type wireKey struct{ a, b coord.Position }
	seenWires := make(map[wireKey]bool)
	var wires []WireNode
	var boxes []BoxNode

	iterations := 0
	for len(queue) > 0 {
		iterations++
		if iterations > cfg.iterationCap {
			return nil, &ParseError{Kind: Looping, Pos: queue[0].pos}
		}

		sym := queue[0]
		queue = queue[1:]

		switch sym.mode {
		case modeWire:
			wire, emitted, parseNow, parseLater, err := stepWire(g, sym, visited)
			if err != nil {
				return nil, err
			}
			if emitted {
				k := wireKey{wire.Start, wire.End}
				if wire.End.Less(wire.Start) {
					k = wireKey{wire.End, wire.Start}
				}
				if !seenWires[k] {
					seenWires[k] = true
					wires = append(wires, wire)
				}
			}
			queue = append(append(parseNow, queue...), parseLater...)
		case modeBox:
			box, emitted, parseLater, err := stepBox(g, sym)
			if err != nil {
				return nil, err
			}
			if emitted {
				boxes = append(boxes, box)
			}
			queue = append(queue, parseLater...)
		}
	}

	boxes = dedupeBoxes(boxes)

	nodes := make([]Node, 0, len(wires)+len(boxes))
	for _, w := range wires {
		nodes = append(nodes, w)
	}
	for _, b := range boxes {
		nodes = append(nodes, b)
	}

	return nodes, nil
}

// stepWire processes one Wire-mode symbol: it dispatches on the glyph at
// sym.pos (T-joint, pin, or straight/corner/cross) per spec §4.4's Wire
// sub-scanner.
func stepWire(g *Grid, sym symbol, visited map[coord.Position]coord.Position) (wire WireNode, emitted bool, parseNow, parseLater []symbol, err error) {
	c, ok := g.At(sym.pos)
	if !ok {
		err = &ParseError{Kind: EndOfInput, Pos: sym.pos}
		return
	}

	switch {
	case isTJoint(c):
		wire = WireNode{Start: sym.wireStart, End: sym.pos}
		emitted = true
		exclude := sym.dir.Opposite()
		for _, d := range tJointArms(c) {
			if d == exclude {
				continue
			}
			next := d.Move(sym.pos)
			// wireStart is the joint's own position, not next: every open
			// arm's eventual wire must include the joint as an endpoint so
			// the three (or four) arms resolve into one net.
			parseNow = append(parseNow, symbol{pos: next, dir: d, mode: modeWire, wireStart: sym.pos})
		}
		return

	case isPinGlyph(c):
		wire = WireNode{Start: sym.wireStart, End: sym.pos}
		emitted = true
		parseLater = append(parseLater, symbol{
			pos:  sym.pos,
			dir:  coord.Down, // scanner convention: box walks proceed downward from the entry pin
			mode: modeBox,
			box:  &boxWalk{start: sym.pos, cornersSeen: make(map[rune]bool)},
		})
		return

	case isWireGlyph(c):
		if c != glyphCross {
			if owner, ok := visited[sym.pos]; ok {
				// This cell was already claimed by another arm exploring the
				// same structure — most commonly the far side of a closed
				// loop walking back toward its own T-joint. Connecting the
				// two arms' origins keeps the loop's closure from being
				// lost instead of silently dropping both arms.
				wire = WireNode{Start: sym.wireStart, End: owner}
				emitted = true
				return
			}
			visited[sym.pos] = sym.wireStart
		}

		nextDir, ok := wireDirection(c, sym.dir)
		if !ok {
			err = &ParseError{Kind: UnexpectedSymbol, Pos: sym.pos}
			return
		}
		nextPos := nextDir.Move(sym.pos)
		nextCh, nextOK := g.At(nextPos)
		if !nextOK || !isWireContinuation(nextCh) {
			wire = WireNode{Start: sym.wireStart, End: sym.pos}
			emitted = true
			return
		}
		parseLater = append(parseLater, symbol{pos: nextPos, dir: nextDir, mode: modeWire, wireStart: sym.wireStart})
		return

	default:
		err = &ParseError{Kind: UnexpectedSymbol, Pos: sym.pos}
		return
	}
}

// stepBox processes one Box-mode symbol: it records corner/pin
// bookkeeping for the glyph at sym.pos, schedules any complementary
// outward wire, and either closes the rectangle or continues the walk,
// per spec §4.4's Box sub-scanner.
func stepBox(g *Grid, sym symbol) (box BoxNode, emitted bool, parseLater []symbol, err error) {
	c, ok := g.At(sym.pos)
	if !ok {
		err = &ParseError{Kind: EndOfInput, Pos: sym.pos}
		return
	}

	ctx := sym.box

	if isBoxCorner(c) {
		if ctx.cornersSeen[c] {
			err = &ParseError{Kind: UnexpectedSymbol, Pos: sym.pos, Message: "box corner visited twice"}
			return
		}
		ctx.cornersSeen[c] = true
		switch c {
		case glyphBoxUL:
			ctx.topLeft, ctx.haveTopLeft = sym.pos, true
		case glyphBoxLR:
			ctx.bottomRight, ctx.haveBottomRight = sym.pos, true
		}
	}

	switch c {
	case glyphPinIn:
		ctx.inputs = append(ctx.inputs, sym.pos)
		out := coord.Left.Move(sym.pos)
		// wireStart is the pin's own position, not out, so the emitted
		// WireNode connects the pin to wherever this outward walk ends.
		parseLater = append(parseLater, symbol{pos: out, dir: coord.Left, mode: modeWire, wireStart: sym.pos})
	case glyphPinOut:
		ctx.outputs = append(ctx.outputs, sym.pos)
		out := coord.Right.Move(sym.pos)
		parseLater = append(parseLater, symbol{pos: out, dir: coord.Right, mode: modeWire, wireStart: sym.pos})
	}

	nextDir, ok := boxDirection(c, sym.dir)
	if !ok {
		err = &ParseError{Kind: UnexpectedSymbol, Pos: sym.pos}
		return
	}
	nextPos := nextDir.Move(sym.pos)

	if nextPos == ctx.start {
		if !ctx.haveTopLeft || !ctx.haveBottomRight {
			err = &ParseError{Kind: UnexpectedState, Pos: sym.pos, Message: "box closed without both corners"}
			return
		}
		box = BoxNode{
			TopLeft:     ctx.topLeft,
			BottomRight: ctx.bottomRight,
			Inputs:      ctx.inputs,
			Outputs:     ctx.outputs,
		}
		emitted = true
		return
	}

	parseLater = append(parseLater, symbol{pos: nextPos, dir: nextDir, mode: modeBox, box: ctx})

	return
}

// dedupeBoxes merges Box nodes that share a rectangle: a box with N
// connected pins is walked once per pin, and every walk discovers the
// same rectangle and the union of its pins. Merging keeps ScanStructural
// idempotent with respect to entry order, matching the determinism the
// rest of the pipeline relies on.
func dedupeBoxes(boxes []BoxNode) []BoxNode {
	type key struct{ tl, br coord.Position }
	order := make([]key, 0, len(boxes))
	merged := make(map[key]*BoxNode)

	for _, b := range boxes {
		k := key{b.TopLeft, b.BottomRight}
		existing, found := merged[k]
		if !found {
			cp := b
			merged[k] = &cp
			order = append(order, k)
			continue
		}
		existing.Inputs = mergePositions(existing.Inputs, b.Inputs)
		existing.Outputs = mergePositions(existing.Outputs, b.Outputs)
	}

	out := make([]BoxNode, 0, len(order))
	for _, k := range order {
		b := *merged[k]
		// Each walk discovers its pins in whatever order its own entry
		// point happened to traverse the perimeter, which need not be
		// top-to-bottom; sort so pin order is independent of which pin's
		// wire the scanner happened to follow first.
		sortPositions(b.Inputs)
		sortPositions(b.Outputs)
		out = append(out, b)
	}

	return out
}

func sortPositions(positions []coord.Position) {
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Less(positions[j])
	})
}

func mergePositions(a, b []coord.Position) []coord.Position {
	seen := make(map[coord.Position]bool, len(a))
	out := make([]coord.Position, 0, len(a))
	for _, p := range a {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range b {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	return out
}
