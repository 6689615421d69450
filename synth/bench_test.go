package synth_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/mazeforge/connectivity"
	"github.com/katalvlaran/mazeforge/synth"
)

// BenchmarkFromSeed_Default is the reference 25×25 maze with 150 walls.
func BenchmarkFromSeed_Default(b *testing.B) {
	req := synth.Request{WidthPx: 1000, HeightPx: 1000, CellSize: 40, Walls: 150}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = synth.FromSeed(int64(i), req)
	}
}

// BenchmarkFromSeed_Dense101 builds a 101×101 maze above the smoothing
// threshold, with each repair strategy.
func BenchmarkFromSeed_Dense101(b *testing.B) {
	req := synth.Request{WidthPx: 1010, HeightPx: 1010, CellSize: 10, Walls: 4000}
	for name, r := range map[string]connectivity.Repairer{
		"Staircase":    connectivity.Staircase,
		"MinimalCarve": connectivity.MinimalCarve,
	} {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = synth.FromSeed(int64(i), req, synth.WithRepairer(r))
			}
		})
	}
}

// BenchmarkGenerateBatch builds 16 default mazes concurrently.
func BenchmarkGenerateBatch(b *testing.B) {
	req := synth.Request{WidthPx: 1000, HeightPx: 1000, CellSize: 40, Walls: 150}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = synth.GenerateBatch(ctx, int64(i), 16, req)
	}
}
