// Package circuit builds a Graph from a diagram's scan result, resolves
// its nets, and compiles the result into a CompiledCircuit: a stateful,
// event-driven evaluator callers feed repeated outer-input vectors to.
//
// Build (C5) correlates box nodes with text labels via a Factory, turning
// each into a Component; Compile (C9) resolves nets with the netresolve
// package and wires a dirty-worklist propagator over them. A
// CompiledCircuit is not safe for concurrent use: its component input and
// output buffers persist state between Eval calls by design.
package circuit
