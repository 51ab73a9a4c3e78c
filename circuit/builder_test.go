package circuit_test

import (
	"testing"

	"github.com/boxwire/circuitry/circuit"
	"github.com/boxwire/circuitry/diagram"
	"github.com/stretchr/testify/require"
)

func TestBuild_SingleNANDShape(t *testing.T) {
	nodes, err := diagram.Parse(nand2Source)
	require.NoError(t, err)

	g, err := circuit.Build(nodes, testFactories())
	require.NoError(t, err)

	require.Len(t, g.Components, 1)
	require.Equal(t, "NAND", g.Components[0].Name)
	require.Len(t, g.Components[0].InputNodes, 2)
	require.Len(t, g.Components[0].OutputNodes, 1)
	require.Len(t, g.OuterInputs, 2)
	require.Len(t, g.OuterOutputs, 1)
}

func TestBuild_UnknownFactory(t *testing.T) {
	nodes, err := diagram.Parse(nand2Source)
	require.NoError(t, err)

	_, err = circuit.Build(nodes, circuit.FactoryTable{})
	require.Error(t, err)

	var compileErr *circuit.CompileError
	require.ErrorAs(t, err, &compileErr)
	require.Equal(t, circuit.UnknownFactory, compileErr.Kind)
}

func TestBuild_LooseWireDetection(t *testing.T) {
	nodes, err := diagram.Parse(looseWireSource)
	require.NoError(t, err)

	_, err = circuit.Build(nodes, circuit.FactoryTable{})
	require.Error(t, err)

	var compileErr *circuit.CompileError
	require.ErrorAs(t, err, &compileErr)
	require.Equal(t, circuit.LooseWire, compileErr.Kind)
	require.Equal(t, 1, compileErr.Pos.Line)
	require.Equal(t, 4, compileErr.Pos.Column)
}

func TestBuild_SortedOuterPortNumbering(t *testing.T) {
	nodes, err := diagram.Parse(threeInputStubsSource)
	require.NoError(t, err)

	g, err := circuit.Build(nodes, circuit.FactoryTable{})
	require.NoError(t, err)

	require.Len(t, g.OuterInputs, 3)

	// Every node reachable through idx.indexOf in Build is assigned in
	// first-seen order over the position-sorted node list, so the three
	// stubs (lines 1, 3, 5) come out numbered 0, 1, 2 regardless of how
	// the structural scanner happened to interleave their walks.
	require.NotEqual(t, g.OuterInputs[0], g.OuterInputs[1])
	require.NotEqual(t, g.OuterInputs[1], g.OuterInputs[2])
}

func TestBuild_LoopClosesWithoutLooping(t *testing.T) {
	nodes, err := diagram.Parse(loopSource)
	require.NoError(t, err)

	g, err := circuit.Build(nodes, circuit.FactoryTable{})
	require.NoError(t, err)

	require.Len(t, g.OuterInputs, 1)
	require.NotEmpty(t, g.Edges)
}

func TestBuild_AndFromNandShape(t *testing.T) {
	nodes, err := diagram.Parse(andFromNandSource)
	require.NoError(t, err)

	g, err := circuit.Build(nodes, testFactories())
	require.NoError(t, err)

	require.Len(t, g.Components, 2)
	require.Len(t, g.OuterInputs, 2)
	require.Len(t, g.OuterOutputs, 1)
}
