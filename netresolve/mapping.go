package netresolve

// PinKind classifies a Pin's role at the graph's edge.
type PinKind uint8

const (
	// ComponentInput is a component's input pin: a consumer.
	ComponentInput PinKind = iota
	// ComponentOutput is a component's output pin: a driver.
	ComponentOutput
	// OuterInput is the circuit's own input port: a driver, fed by the
	// caller.
	OuterInput
	// OuterOutput is the circuit's own output port: a consumer, read by
	// the caller.
	OuterOutput
)

// Pin names one connection point in the unresolved graph: the raw node
// it sits on, its role, and (for component pins) which component and
// which of its input/output slots.
type Pin struct {
	Node      NodeID
	Kind      PinKind
	Component int // meaningful only for ComponentInput/ComponentOutput
	Index     int // slot index within Component, or outer port index
}

func (p Pin) isDriver() bool {
	return p.Kind == ComponentOutput || p.Kind == OuterInput
}

// Mapping is the net-indexed result of ExtractMappings: for every net,
// the pins that drive it and the pins that consume it.
type Mapping struct {
	Drivers   [][]Pin
	Consumers [][]Pin
}

// ExtractMappings partitions pins by the net each sits on (via netOf) and
// within each net, by whether the pin drives or consumes. A net may end
// up with zero, one, or several drivers; the caller (the circuit
// package's evaluator) decides how to combine them.
func ExtractMappings(netOf []int, numNets int, pins []Pin) Mapping {
	m := Mapping{
		Drivers:   make([][]Pin, numNets),
		Consumers: make([][]Pin, numNets),
	}

	for _, p := range pins {
		net := netOf[p.Node]
		if p.isDriver() {
			m.Drivers[net] = append(m.Drivers[net], p)
		} else {
			m.Consumers[net] = append(m.Consumers[net], p)
		}
	}

	return m
}
