package diagram

import "github.com/boxwire/circuitry/coord"

// Node is a scan result: a Wire, Box, Text, Input, or Output. It is a
// tagged variant sortable by canonical position (spec §3).
type Node interface {
	// Pos returns the position used to order this Node relative to others
	// when building a Graph (line-major, column-major).
	Pos() coord.Position
}

// WireNode records a wire segment discovered by the structural scanner,
// from where the follow-wire walk began to where it ended.
type WireNode struct {
	Start coord.Position
	End   coord.Position
}

// Pos returns the wire's start, its canonical position for sorting.
func (w WireNode) Pos() coord.Position { return w.Start }

// BoxNode records a sub-component's bounding rectangle and its ordered
// input/output pin positions, as discovered by the box sub-scanner.
type BoxNode struct {
	TopLeft     coord.Position
	BottomRight coord.Position
	Inputs      []coord.Position
	Outputs     []coord.Position
}

// Pos returns the box's top-left corner, its canonical position.
func (b BoxNode) Pos() coord.Position { return b.TopLeft }

// TextNode records an alphanumeric token emitted by the text scanner.
type TextNode struct {
	Line        int
	ColumnStart int
	ColumnEnd   int // exclusive
	Value       string
}

// Pos returns the token's starting position.
func (t TextNode) Pos() coord.Position {
	return coord.Position{Line: t.Line, Column: t.ColumnStart}
}

// InputNode marks an outer input port: a dangling wire stub at the left
// margin of the source.
type InputNode struct {
	Position coord.Position
}

// Pos returns the stub's position.
func (i InputNode) Pos() coord.Position { return i.Position }

// OutputNode marks an outer output port: a dangling wire stub at the
// right margin of the source.
type OutputNode struct {
	Position coord.Position
}

// Pos returns the stub's position.
func (o OutputNode) Pos() coord.Position { return o.Position }
