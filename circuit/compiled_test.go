package circuit_test

import (
	"testing"

	"github.com/boxwire/circuitry/bitstate"
	"github.com/boxwire/circuitry/circuit"
	"github.com/boxwire/circuitry/diagram"
	"github.com/stretchr/testify/require"
)

func compileSource(t *testing.T, source string) *circuit.CompiledCircuit {
	t.Helper()

	g, err := circuit.Parse(source, testFactories())
	require.NoError(t, err)

	cc, err := circuit.Compile(g)
	require.NoError(t, err)

	return cc
}

func TestCompiledCircuit_SingleNAND(t *testing.T) {
	cc := compileSource(t, nand2Source)

	out, err := cc.Eval(bitstate.Vector{bitstate.On, bitstate.On})
	require.NoError(t, err)
	require.Equal(t, bitstate.Vector{bitstate.Off}, out)

	out, err = cc.Eval(bitstate.Vector{bitstate.On, bitstate.Off})
	require.NoError(t, err)
	require.Equal(t, bitstate.Vector{bitstate.On}, out)

	out, err = cc.Eval(bitstate.Vector{bitstate.Undefined, bitstate.Undefined})
	require.NoError(t, err)
	require.Equal(t, bitstate.Vector{bitstate.Undefined}, out)
}

func TestCompiledCircuit_NOTFromNAND(t *testing.T) {
	cc := compileSource(t, notFromNandSource)

	out, err := cc.Eval(bitstate.Vector{bitstate.On})
	require.NoError(t, err)
	require.Equal(t, bitstate.Vector{bitstate.Off}, out)

	out, err = cc.Eval(bitstate.Vector{bitstate.Off})
	require.NoError(t, err)
	require.Equal(t, bitstate.Vector{bitstate.On}, out)
}

func TestCompiledCircuit_ANDFromCascadedNAND(t *testing.T) {
	cc := compileSource(t, andFromNandSource)

	out, err := cc.Eval(bitstate.Vector{bitstate.On, bitstate.On})
	require.NoError(t, err)
	require.Equal(t, bitstate.Vector{bitstate.On}, out)

	out, err = cc.Eval(bitstate.Vector{bitstate.On, bitstate.Off})
	require.NoError(t, err)
	require.Equal(t, bitstate.Vector{bitstate.Off}, out)
}

func TestCompiledCircuit_SettlesIdempotently(t *testing.T) {
	cc := compileSource(t, nand2Source)

	first, err := cc.Eval(bitstate.Vector{bitstate.On, bitstate.Off})
	require.NoError(t, err)

	second, err := cc.Eval(bitstate.Vector{bitstate.On, bitstate.Off})
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestCompiledCircuit_LoopClosesWithoutOscillation(t *testing.T) {
	nodes, err := diagram.Parse(loopSource)
	require.NoError(t, err)

	g, err := circuit.Build(nodes, circuit.FactoryTable{})
	require.NoError(t, err)

	cc, err := circuit.Compile(g)
	require.NoError(t, err)

	out, err := cc.Eval(bitstate.Vector{bitstate.On})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestAsFactory_NestsCompiledCircuit(t *testing.T) {
	g, err := circuit.Parse(nand2Source, testFactories())
	require.NoError(t, err)

	nested := circuit.AsFactory(func() *circuit.CompiledCircuit {
		cc, err := circuit.Compile(g)
		require.NoError(t, err)

		return cc
	})

	logic := nested()
	out := logic(bitstate.Vector{bitstate.On, bitstate.On})
	require.Equal(t, bitstate.Vector{bitstate.Off}, out)
}
