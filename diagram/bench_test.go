package diagram_test

import (
	"strings"
	"testing"

	"github.com/boxwire/circuitry/diagram"
)

// BenchmarkParse_Chain measures Parse on a long chain of N boxes linked
// by two-cell wires.
func BenchmarkParse_Chain(b *testing.B) {
	const n = 200

	var top, mid, bot strings.Builder
	top.WriteString("   ")
	mid.WriteString("───")
	bot.WriteString("   ")
	for i := 0; i < n; i++ {
		top.WriteString("┏━━┓  ")
		mid.WriteString("┨NO┠──")
		bot.WriteString("┗━━┛  ")
	}
	source := top.String() + "\n" + mid.String() + "\n" + bot.String()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := diagram.Parse(source); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
