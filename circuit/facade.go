package circuit

import "github.com/boxwire/circuitry/diagram"

// Parse scans source and builds a Graph from the result in one step,
// re-exporting diagram.Parse so callers who only care about the compiled
// circuit never need to import the diagram package directly.
func Parse(source string, factories FactoryTable, opts ...diagram.ParseOption) (*Graph, error) {
	nodes, err := diagram.Parse(source, opts...)
	if err != nil {
		return nil, err
	}

	return Build(nodes, factories)
}
