package diagram

import (
	"context"
	"sort"
)

// ParseOption configures Parse and Scan.
type ParseOption func(*parseConfig)

type parseConfig struct {
	scanOpts []ScanOption
	ctx      context.Context
}

func defaultParseConfig() parseConfig {
	return parseConfig{ctx: context.Background()}
}

// WithParseIterationCap overrides the structural scanner's worklist cap.
func WithParseIterationCap(n int) ParseOption {
	return func(c *parseConfig) {
		c.scanOpts = append(c.scanOpts, WithIterationCap(n))
	}
}

// WithContext makes Parse observe ctx's cancellation between scan phases.
// The structural scanner itself is not preemptible mid-walk; this only
// bounds the time spent between C1-C4's independent passes.
func WithContext(ctx context.Context) ParseOption {
	return func(c *parseConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Scan runs the full structural pipeline over source and returns every
// discovered node (wires, boxes, text tokens, and outer input/output
// ports), sorted by canonical position. It performs no graph building;
// see the circuit package for that.
func Scan(source string, opts ...ParseOption) ([]Node, error) {
	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := NewGrid(source)

	if err := cfg.ctx.Err(); err != nil {
		return nil, err
	}

	danglingInputs, danglingOutputs := FindDanglingWires(g)

	structural, err := ScanStructural(g, danglingInputs, cfg.scanOpts...)
	if err != nil {
		return nil, err
	}

	if err := cfg.ctx.Err(); err != nil {
		return nil, err
	}

	textTokens := ScanText(g)

	nodes := make([]Node, 0, len(structural)+len(textTokens)+len(danglingInputs)+len(danglingOutputs))
	nodes = append(nodes, structural...)
	for _, t := range textTokens {
		nodes = append(nodes, t)
	}
	for _, p := range danglingInputs {
		nodes = append(nodes, InputNode{Position: p})
	}
	for _, p := range danglingOutputs {
		nodes = append(nodes, OutputNode{Position: p})
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Pos().Less(nodes[j].Pos())
	})

	return nodes, nil
}

// Parse is an alias for Scan kept for readers coming from the circuit
// package's Build(nodes), which expects Parse's result as its input.
func Parse(source string, opts ...ParseOption) ([]Node, error) {
	return Scan(source, opts...)
}
