package circuit

import "sort"

// Builder assembles a Graph directly from code, without parsing a
// diagram: components and raw nodes are addressed by caller-chosen keys
// instead of grid positions. It exists to construct circuits
// programmatically and to exercise the round-trip property against a
// diagram describing the same connectivity (spec §8).
//
// Builder is not safe for concurrent use.
type Builder struct {
	nodeIndex    map[string]int
	nodeCount    int
	components   []Component
	edges        []rawEdge
	outerInputs  []int
	outerOutputs []int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{nodeIndex: make(map[string]int)}
}

// AddNode returns the stable index for key, allocating a fresh one the
// first time key is seen.
//
// Complexity: O(1) amortized.
func (b *Builder) AddNode(key string) int {
	if idx, ok := b.nodeIndex[key]; ok {
		return idx
	}
	idx := b.nodeCount
	b.nodeIndex[key] = idx
	b.nodeCount++

	return idx
}

// AddComponent instantiates factory and wires its input and output pins
// to the given node keys, in order. It panics if factory is nil, the
// same contract diagram-driven Build relies on via its FactoryTable
// lookup.
func (b *Builder) AddComponent(name string, factory Factory, inputs, outputs []string) Component {
	inputNodes := make([]int, len(inputs))
	for i, k := range inputs {
		inputNodes[i] = b.AddNode(k)
	}
	outputNodes := make([]int, len(outputs))
	for i, k := range outputs {
		outputNodes[i] = b.AddNode(k)
	}

	c := Component{Name: name, Eval: factory(), InputNodes: inputNodes, OutputNodes: outputNodes}
	b.components = append(b.components, c)

	return c
}

// AddEdge connects two node keys with a wire segment, allocating nodes
// for keys not already registered.
func (b *Builder) AddEdge(a, c string) {
	b.edges = append(b.edges, rawEdge{A: b.AddNode(a), B: b.AddNode(c)})
}

// AddOuterInput marks key as an outer input port, numbered in call order.
func (b *Builder) AddOuterInput(key string) {
	b.outerInputs = append(b.outerInputs, b.AddNode(key))
}

// AddOuterOutput marks key as an outer output port, numbered in call
// order.
func (b *Builder) AddOuterOutput(key string) {
	b.outerOutputs = append(b.outerOutputs, b.AddNode(key))
}

// Build finalizes the graph, running the same loose-wire check the
// diagram-driven path does. Since a Builder has no source positions,
// CompileError.Pos is left zero and Message names the offending node's
// first-registered key instead.
func (b *Builder) Build() (*Graph, error) {
	g := &Graph{
		Components:   b.components,
		NodeCount:    b.nodeCount,
		Edges:        b.edges,
		OuterInputs:  b.outerInputs,
		OuterOutputs: b.outerOutputs,
	}

	if loose := detectLooseWires(g); len(loose) > 0 {
		sort.Ints(loose)
		return nil, &CompileError{Kind: LooseWire, Message: b.keyOf(loose[0])}
	}

	return g, nil
}

func (b *Builder) keyOf(index int) string {
	for k, i := range b.nodeIndex {
		if i == index {
			return k
		}
	}

	return ""
}
