// Package coord defines the shared geometry primitives used by the
// diagram scanner and the circuit graph: a zero-based (line, column)
// Position with a total order, and a four-way Direction with table-driven
// movement.
package coord
