package circuit

import "github.com/boxwire/circuitry/bitstate"

// Logic is a component's pure combinational behavior: given its current
// input levels, it returns the levels to drive on its outputs. Arity is
// not carried by Logic itself — it is fixed by the number of pins the
// diagram drew on the box the Logic was instantiated for. A Logic must
// be deterministic and must not retain the slice it is given or returns.
type Logic func(inputs bitstate.Vector) bitstate.Vector

// Factory produces one fresh, independent Logic closure per call. The
// factory table mapping labels to Factory values is supplied by the
// caller (the concrete gate library is outside this package); Build only
// consumes it.
type Factory func() Logic

// FactoryTable maps a box's text label to the Factory that instantiates
// it.
type FactoryTable map[string]Factory

// Component is one box in a built Graph: a freshly instantiated Logic
// bound to the graph node indices wired to its input and output pins, in
// the pin order the diagram drew them.
type Component struct {
	Name        string
	Eval        Logic
	InputNodes  []int
	OutputNodes []int
}

// AsFactory wraps a CompiledCircuit so it can be registered under a
// FactoryTable entry as a nested sub-component, per the rule that every
// compiled circuit is itself usable as a component: its evaluator simply
// delegates to Eval. Each call of the returned Factory invokes blueprint
// and closes over the CompiledCircuit it returns, so instantiations share
// buffers only when blueprint returns the same CompiledCircuit twice.
func AsFactory(blueprint func() *CompiledCircuit) Factory {
	return func() Logic {
		cc := blueprint()
		return func(inputs bitstate.Vector) bitstate.Vector {
			outputs, err := cc.Eval(inputs)
			if err != nil {
				// A nested circuit's own OscillationSuspected is not
				// representable in Logic's pure signature; surface it as
				// an all-Undefined result, matching an unresolved net.
				return make(bitstate.Vector, len(cc.graph.OuterOutputs))
			}

			return outputs
		}
	}
}
