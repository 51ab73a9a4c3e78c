package diagram_test

import (
	"testing"

	"github.com/boxwire/circuitry/coord"
	"github.com/boxwire/circuitry/diagram"
	"github.com/stretchr/testify/require"
)

func TestFindDanglingWires_Table(t *testing.T) {
	cases := []struct {
		name        string
		source      string
		wantInputs  []coord.Position
		wantOutputs []coord.Position
	}{
		{
			name:        "bare wire both margins dangling",
			source:      "───",
			wantInputs:  []coord.Position{{Line: 0, Column: 0}},
			wantOutputs: []coord.Position{{Line: 0, Column: 2}},
		},
		{
			name:        "wire flanked by blanks",
			source:      "  ───  ",
			wantInputs:  []coord.Position{{Line: 0, Column: 2}},
			wantOutputs: []coord.Position{{Line: 0, Column: 4}},
		},
		{
			name:        "no wire at all",
			source:      "hello",
			wantInputs:  nil,
			wantOutputs: nil,
		},
		{
			name:        "two separate stubs on one line",
			source:      "── ──",
			wantInputs:  []coord.Position{{Line: 0, Column: 0}, {Line: 0, Column: 3}},
			wantOutputs: []coord.Position{{Line: 0, Column: 1}, {Line: 0, Column: 4}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := diagram.NewGrid(tc.source)
			inputs, outputs := diagram.FindDanglingWires(g)
			require.Equal(t, tc.wantInputs, inputs)
			require.Equal(t, tc.wantOutputs, outputs)
		})
	}
}
