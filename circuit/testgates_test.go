package circuit_test

import (
	"github.com/boxwire/circuitry/bitstate"
	"github.com/boxwire/circuitry/circuit"
)

// nandFactory is a stand-in for the gate library the circuit package
// explicitly does not ship: a two-input NAND whose truth table matches
// the non-physical merge rule's Undefined propagation.
func nandFactory() circuit.Factory {
	return func() circuit.Logic {
		return func(in bitstate.Vector) bitstate.Vector {
			a, b := in[0], in[1]
			out := make(bitstate.Vector, 1)
			switch {
			case a == bitstate.On && b == bitstate.On:
				out[0] = bitstate.Off
			case a == bitstate.Undefined && b == bitstate.Undefined:
				out[0] = bitstate.Undefined
			default:
				out[0] = bitstate.On
			}

			return out
		}
	}
}

func testFactories() circuit.FactoryTable {
	return circuit.FactoryTable{"NAND": nandFactory()}
}
