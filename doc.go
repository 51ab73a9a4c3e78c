// Package circuitry compiles 2-D box-drawing schematics into callable,
// event-driven digital logic.
//
// A diagram is plain text: wires drawn with Unicode box-drawing glyphs,
// components drawn as boxes with a label and a row of pins on each side.
//
//	   ┏━━━━┓
//	───┨NAND┠───
//	───┨    ┃
//	   ┗━━━━┛
//
// The pipeline is three packages deep:
//
//	diagram/    — parses source text into a position-sorted list of wire, box,
//	              text and port nodes (coord.Position-addressed)
//	netresolve/ — groups those nodes into electrical nets via union-find
//	circuit/    — builds a Graph from the nodes plus a factory table, then
//	              compiles it into a CompiledCircuit ready for repeated
//	              evaluation against changing inputs
//
// circuit.Parse and circuit.Compile are the two calls most callers need;
// see their examples for end-to-end usage.
package circuitry
