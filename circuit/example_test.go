package circuit_test

import (
	"fmt"

	"github.com/boxwire/circuitry/bitstate"
	"github.com/boxwire/circuitry/circuit"
)

func ExampleCompile() {
	factories := circuit.FactoryTable{"NAND": nandFactory()}

	g, err := circuit.Parse(nand2Source, factories)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	cc, err := circuit.Compile(g)
	if err != nil {
		fmt.Println("compile error:", err)
		return
	}

	out, err := cc.Eval(bitstate.Vector{bitstate.On, bitstate.On})
	if err != nil {
		fmt.Println("eval error:", err)
		return
	}

	fmt.Println(out)
	// Output: [Off]
}
