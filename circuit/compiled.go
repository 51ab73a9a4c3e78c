package circuit

import (
	"github.com/boxwire/circuitry/bitstate"
	"github.com/boxwire/circuitry/netresolve"
)

// defaultOscillationMultiplier bounds the dirty-worklist's total step
// count at multiplier * (|nodes| + |components| + 1), per spec guidance of
// "4x nodes x components" scaled down to a sum since Go's worklist is
// component-granular rather than node-granular.
const defaultOscillationMultiplier = 4

// CompileOption configures Compile.
type CompileOption func(*compileConfig)

type compileConfig struct {
	oscillationMultiplier int
}

func defaultCompileConfig() compileConfig {
	return compileConfig{oscillationMultiplier: defaultOscillationMultiplier}
}

// WithOscillationMultiplier overrides the per-Eval worklist step
// multiplier used to detect a non-settling circuit. Values <= 0 are
// ignored.
func WithOscillationMultiplier(n int) CompileOption {
	return func(c *compileConfig) {
		if n > 0 {
			c.oscillationMultiplier = n
		}
	}
}

// CompiledCircuit is a net-resolved Graph wired into a dirty-worklist
// propagator. Its component input/output buffers persist across Eval
// calls, so repeated calls model a circuit settling incrementally as its
// outer inputs change, rather than recomputing from scratch each time.
//
// CompiledCircuit is not safe for concurrent use.
type CompiledCircuit struct {
	graph   *Graph
	netOf   []int
	numNets int
	mapping netresolve.Mapping

	netValues        bitstate.Vector
	outerInputBuf    bitstate.Vector
	componentInputs  []bitstate.Vector
	componentOutputs []bitstate.Vector

	oscillationCap int
}

// Compile resolves graph's nets and prepares a CompiledCircuit ready for
// repeated Eval calls. All nets and component buffers start Undefined.
func Compile(graph *Graph, opts ...CompileOption) (*CompiledCircuit, error) {
	cfg := defaultCompileConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	resolver := netresolve.NewResolver(graph.NodeCount)
	for _, e := range graph.Edges {
		resolver.Union(netresolve.NodeID(e.A), netresolve.NodeID(e.B))
	}
	netOf, numNets := resolver.Nets()

	pins := make([]netresolve.Pin, 0, graph.NodeCount)
	for ci, c := range graph.Components {
		for j, node := range c.InputNodes {
			pins = append(pins, netresolve.Pin{Node: netresolve.NodeID(node), Kind: netresolve.ComponentInput, Component: ci, Index: j})
		}
		for j, node := range c.OutputNodes {
			pins = append(pins, netresolve.Pin{Node: netresolve.NodeID(node), Kind: netresolve.ComponentOutput, Component: ci, Index: j})
		}
	}
	for i, node := range graph.OuterInputs {
		pins = append(pins, netresolve.Pin{Node: netresolve.NodeID(node), Kind: netresolve.OuterInput, Index: i})
	}
	for i, node := range graph.OuterOutputs {
		pins = append(pins, netresolve.Pin{Node: netresolve.NodeID(node), Kind: netresolve.OuterOutput, Index: i})
	}

	mapping := netresolve.ExtractMappings(netOf, numNets, pins)

	componentInputs := make([]bitstate.Vector, len(graph.Components))
	componentOutputs := make([]bitstate.Vector, len(graph.Components))
	for i, c := range graph.Components {
		componentInputs[i] = make(bitstate.Vector, len(c.InputNodes))
		componentOutputs[i] = make(bitstate.Vector, len(c.OutputNodes))
	}

	stepCap := cfg.oscillationMultiplier * (graph.NodeCount + len(graph.Components) + 1)

	return &CompiledCircuit{
		graph:            graph,
		netOf:            netOf,
		numNets:          numNets,
		mapping:          mapping,
		netValues:        make(bitstate.Vector, numNets),
		outerInputBuf:    make(bitstate.Vector, len(graph.OuterInputs)),
		componentInputs:  componentInputs,
		componentOutputs: componentOutputs,
		oscillationCap:   stepCap,
	}, nil
}

// Eval drives outerInputs onto the circuit's input ports, propagates the
// change through the dirty worklist until it settles, and returns the
// resulting levels on the circuit's output ports. Unchanged ports from
// the previous call are not redundantly re-evaluated: only components
// downstream of an actual net-value change are re-run.
func (cc *CompiledCircuit) Eval(outerInputs bitstate.Vector) (bitstate.Vector, error) {
	dirty := make([]int, 0, len(cc.graph.Components))
	queued := make(map[int]bool)

	push := func(ci int) {
		if !queued[ci] {
			queued[ci] = true
			dirty = append(dirty, ci)
		}
	}

	propagate := func(net int) {
		newVal := cc.recomputeNet(net)
		if newVal == cc.netValues[net] {
			return
		}
		cc.netValues[net] = newVal
		for _, p := range cc.mapping.Consumers[net] {
			if p.Kind == netresolve.ComponentInput {
				push(p.Component)
			}
		}
	}

	for i := 0; i < len(outerInputs) && i < len(cc.outerInputBuf); i++ {
		if cc.outerInputBuf[i] == outerInputs[i] {
			continue
		}
		cc.outerInputBuf[i] = outerInputs[i]
		propagate(cc.netOf[cc.graph.OuterInputs[i]])
	}

	steps := 0
	for len(dirty) > 0 {
		steps++
		if steps > cc.oscillationCap {
			return nil, &CompileError{Kind: OscillationSuspected}
		}

		ci := dirty[len(dirty)-1]
		dirty = dirty[:len(dirty)-1]
		queued[ci] = false

		component := cc.graph.Components[ci]
		in := cc.componentInputs[ci]
		for j, node := range component.InputNodes {
			in[j] = cc.netValues[cc.netOf[node]]
		}

		out := component.Eval(in)
		if out.Equal(cc.componentOutputs[ci]) {
			continue
		}
		copy(cc.componentOutputs[ci], out)

		for _, node := range component.OutputNodes {
			propagate(cc.netOf[node])
		}
	}

	result := make(bitstate.Vector, len(cc.graph.OuterOutputs))
	for i, node := range cc.graph.OuterOutputs {
		result[i] = cc.netValues[cc.netOf[node]]
	}

	return result, nil
}

// recomputeNet folds every driver currently asserted on net via the
// non-physical merge rule (bitstate.Merge): On dominates, Off beats
// Undefined.
func (cc *CompiledCircuit) recomputeNet(net int) bitstate.State {
	drivers := cc.mapping.Drivers[net]
	if len(drivers) == 0 {
		return bitstate.Undefined
	}

	values := make([]bitstate.State, 0, len(drivers))
	for _, p := range drivers {
		switch p.Kind {
		case netresolve.OuterInput:
			values = append(values, cc.outerInputBuf[p.Index])
		case netresolve.ComponentOutput:
			values = append(values, cc.componentOutputs[p.Component][p.Index])
		}
	}

	return bitstate.MergeAll(values)
}
