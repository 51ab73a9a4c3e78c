// Package diagram turns a 2-D ASCII/Unicode box-drawing source into a
// position-sorted list of Nodes: wire segments, component boxes with their
// pin positions, text labels, and outer input/output ports.
//
// Parse (an alias for Scan) runs the whole pipeline. Internally it runs
// three passes over the same Grid: FindDanglingWires locates outer ports,
// ScanStructural walks wires and box borders starting from each dangling
// input FindDanglingWires reported, and ScanText extracts labels. None of
// the passes mutate the grid, and each is also exported on its own.
package diagram
