package circuit

import (
	"fmt"
	"strings"
)

// rawEdge connects two raw graph node indices, contributed by one wire
// segment.
type rawEdge struct {
	A, B int
}

// Graph is the built, but not yet net-resolved, circuit: a stable-index
// arena of components and raw graph nodes (one per distinct wire
// endpoint, pin, or outer port position), plus the wire edges between
// them. Outer ports are recorded as raw node indices in drawn order.
//
// Graph is produced once by Build and is safe to read concurrently; it
// is never mutated after Build returns.
type Graph struct {
	Components   []Component
	NodeCount    int
	Edges        []rawEdge
	OuterInputs  []int
	OuterOutputs []int
}

// Equal reports whether g and other describe the same circuit: same
// components (by name, eval identity is not comparable and is ignored),
// same node count, same edge set, and same outer port wiring. It exists
// primarily so round-tripping a diagram through Parse and Build twice can
// be asserted identical in tests.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.NodeCount != other.NodeCount {
		return false
	}
	if len(g.Components) != len(other.Components) {
		return false
	}
	for i := range g.Components {
		a, b := g.Components[i], other.Components[i]
		if a.Name != b.Name || !intsEqual(a.InputNodes, b.InputNodes) || !intsEqual(a.OutputNodes, b.OutputNodes) {
			return false
		}
	}
	if !intsEqual(g.OuterInputs, other.OuterInputs) || !intsEqual(g.OuterOutputs, other.OuterOutputs) {
		return false
	}

	return edgeSetEqual(g.Edges, other.Edges)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func edgeSetEqual(a, b []rawEdge) bool {
	if len(a) != len(b) {
		return false
	}
	norm := func(edges []rawEdge) map[rawEdge]int {
		counts := make(map[rawEdge]int, len(edges))
		for _, e := range edges {
			if e.A > e.B {
				e.A, e.B = e.B, e.A
			}
			counts[e]++
		}

		return counts
	}
	ca, cb := norm(a), norm(b)
	if len(ca) != len(cb) {
		return false
	}
	for k, v := range ca {
		if cb[k] != v {
			return false
		}
	}

	return true
}

// String renders a one-line summary of the graph's shape.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph{nodes:%d components:%d edges:%d inputs:%d outputs:%d}",
		g.NodeCount, len(g.Components), len(g.Edges), len(g.OuterInputs), len(g.OuterOutputs))
}

// DebugString renders a full multi-line dump of the graph, one line per
// component and edge, for use in tests and interactive debugging. It is
// not a logging facility and is never called from non-test code.
func (g *Graph) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph (%d nodes, %d outer inputs, %d outer outputs)\n", g.NodeCount, len(g.OuterInputs), len(g.OuterOutputs))
	for i, c := range g.Components {
		fmt.Fprintf(&b, "  component[%d] %s in=%v out=%v\n", i, c.Name, c.InputNodes, c.OutputNodes)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  edge %d-%d\n", e.A, e.B)
	}
	fmt.Fprintf(&b, "  outer inputs:  %v\n", g.OuterInputs)
	fmt.Fprintf(&b, "  outer outputs: %v\n", g.OuterOutputs)

	return b.String()
}
