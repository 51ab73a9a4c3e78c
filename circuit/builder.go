package circuit

import (
	"sort"

	"github.com/boxwire/circuitry/coord"
	"github.com/boxwire/circuitry/diagram"
)

// nodeIndexer assigns stable, first-seen-order indices to grid positions,
// so that two positions are the same graph node exactly when they are
// the same cell.
type nodeIndexer struct {
	index map[coord.Position]int
}

func newNodeIndexer() *nodeIndexer {
	return &nodeIndexer{index: make(map[coord.Position]int)}
}

func (n *nodeIndexer) indexOf(p coord.Position) int {
	if idx, ok := n.index[p]; ok {
		return idx
	}
	idx := len(n.index)
	n.index[p] = idx

	return idx
}

// Build correlates a diagram's scan result into a Graph: box nodes become
// Components via factories, wire nodes become edges between raw graph
// nodes, and dangling input/output nodes become the circuit's outer
// ports, in the order Parse discovered them.
func Build(nodes []diagram.Node, factories FactoryTable) (*Graph, error) {
	idx := newNodeIndexer()

	var boxes []diagram.BoxNode
	var texts []diagram.TextNode
	var wires []diagram.WireNode
	var inputs []diagram.InputNode
	var outputs []diagram.OutputNode

	for _, n := range nodes {
		switch v := n.(type) {
		case diagram.BoxNode:
			boxes = append(boxes, v)
		case diagram.TextNode:
			texts = append(texts, v)
		case diagram.WireNode:
			wires = append(wires, v)
		case diagram.InputNode:
			inputs = append(inputs, v)
		case diagram.OutputNode:
			outputs = append(outputs, v)
		}
	}

	var edges []rawEdge
	for _, w := range wires {
		edges = append(edges, rawEdge{A: idx.indexOf(w.Start), B: idx.indexOf(w.End)})
	}

	outerInputs := make([]int, len(inputs))
	for i, n := range inputs {
		outerInputs[i] = idx.indexOf(n.Position)
	}

	outerOutputs := make([]int, len(outputs))
	for i, n := range outputs {
		outerOutputs[i] = idx.indexOf(n.Position)
	}

	components := make([]Component, len(boxes))
	for i, box := range boxes {
		label, labelPos, found := enclosedLabel(box, texts)
		if !found {
			return nil, &CompileError{Kind: MissingLabel, Pos: box.TopLeft}
		}

		factory, ok := factories[label]
		if !ok {
			return nil, &CompileError{Kind: UnknownFactory, Pos: labelPos, Message: label}
		}

		inputNodes := make([]int, len(box.Inputs))
		for j, p := range box.Inputs {
			inputNodes[j] = idx.indexOf(p)
		}
		outputNodes := make([]int, len(box.Outputs))
		for j, p := range box.Outputs {
			outputNodes[j] = idx.indexOf(p)
		}

		components[i] = Component{
			Name:        label,
			Eval:        factory(),
			InputNodes:  inputNodes,
			OutputNodes: outputNodes,
		}
	}

	graph := &Graph{
		Components:   components,
		NodeCount:    len(idx.index),
		Edges:        edges,
		OuterInputs:  outerInputs,
		OuterOutputs: outerOutputs,
	}

	if err := checkLooseWires(graph, idx); err != nil {
		return nil, err
	}

	return graph, nil
}

// enclosedLabel returns the first text node (in sort order) whose start
// position lies strictly inside box's rectangle.
func enclosedLabel(box diagram.BoxNode, texts []diagram.TextNode) (string, coord.Position, bool) {
	candidates := make([]diagram.TextNode, 0, 1)
	for _, t := range texts {
		pos := t.Pos()
		if pos.Line > box.TopLeft.Line && pos.Line < box.BottomRight.Line &&
			pos.Column > box.TopLeft.Column && pos.Column < box.BottomRight.Column {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return "", coord.Position{}, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Pos().Less(candidates[j].Pos())
	})

	return candidates[0].Value, candidates[0].Pos(), true
}

// detectLooseWires returns, in node-index order, every raw node that
// touches at most one edge and is neither a component pin nor an outer
// port: a wire segment that terminates in the middle of nowhere, or a
// node no edge reaches at all.
func detectLooseWires(g *Graph) []int {
	anchored := make([]bool, g.NodeCount)
	for _, c := range g.Components {
		for _, n := range c.InputNodes {
			anchored[n] = true
		}
		for _, n := range c.OutputNodes {
			anchored[n] = true
		}
	}
	for _, n := range g.OuterInputs {
		anchored[n] = true
	}
	for _, n := range g.OuterOutputs {
		anchored[n] = true
	}

	degree := make([]int, g.NodeCount)
	for _, e := range g.Edges {
		// A self-loop (Start == End) arises when a wire arm walks all the
		// way around a closed loop back into the node it started from; it
		// is genuine connectivity, not a dead end, so it counts on both
		// ends like any other edge.
		degree[e.A]++
		degree[e.B]++
	}

	var loose []int
	for n := 0; n < g.NodeCount; n++ {
		if !anchored[n] && degree[n] <= 1 {
			loose = append(loose, n)
		}
	}

	return loose
}

// checkLooseWires reports a LooseWire error positioned at the
// earliest-drawn offending node, for graphs built from a parsed diagram.
func checkLooseWires(g *Graph, idx *nodeIndexer) error {
	loose := detectLooseWires(g)
	if len(loose) == 0 {
		return nil
	}

	positionOf := make([]coord.Position, g.NodeCount)
	for p, i := range idx.index {
		positionOf[i] = p
	}

	sort.Slice(loose, func(i, j int) bool {
		return positionOf[loose[i]].Less(positionOf[loose[j]])
	})

	return &CompileError{Kind: LooseWire, Pos: positionOf[loose[0]]}
}
