package diagram_test

import (
	"testing"

	"github.com/boxwire/circuitry/diagram"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleBoxEndToEnd(t *testing.T) {
	nodes, err := diagram.Parse(nandSource)
	require.NoError(t, err)

	var boxes, wires, inputs, outputs, texts int
	for _, n := range nodes {
		switch n.(type) {
		case diagram.BoxNode:
			boxes++
		case diagram.WireNode:
			wires++
		case diagram.InputNode:
			inputs++
		case diagram.OutputNode:
			outputs++
		case diagram.TextNode:
			texts++
		}
	}

	require.Equal(t, 1, boxes)
	require.Equal(t, 2, wires)
	require.Equal(t, 1, inputs)
	require.Equal(t, 1, outputs)
	require.Equal(t, 1, texts)
}

func TestParse_SortsNodesByPosition(t *testing.T) {
	nodes, err := diagram.Parse(nandSource)
	require.NoError(t, err)

	for i := 1; i < len(nodes); i++ {
		require.False(t, nodes[i].Pos().Less(nodes[i-1].Pos()),
			"node %d (%v) sorts before node %d (%v)", i, nodes[i].Pos(), i-1, nodes[i-1].Pos())
	}
}

func TestParse_PropagatesScanErrors(t *testing.T) {
	_, err := diagram.Parse("────", diagram.WithParseIterationCap(1))
	require.Error(t, err)

	var scanErr *diagram.ParseError
	require.ErrorAs(t, err, &scanErr)
	require.Equal(t, diagram.Looping, scanErr.Kind)
}
