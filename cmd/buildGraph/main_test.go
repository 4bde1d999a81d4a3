package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByCPU(t *testing.T) {
	sessions := []FullReport{
		{
			SystemInfo: SystemInfo{NumCPU: 8, SimulatedCPUCount: 2},
			Benchmarks: []BenchmarkResult{
				{Implementation: "IntegerQueue", NumWorkers: 4, NumInserted: 500, NumRemoved: 500, ActualElapsed: "1ms"},
				{Implementation: "IntegerQueue", NumWorkers: 4, NumInserted: 0, NumRemoved: 0, ActualElapsed: "1ms"},
				{Implementation: "IntegerStack", NumWorkers: 1, NumInserted: 1, NumRemoved: 1, ActualElapsed: "bogus"},
			},
		},
		{
			SystemInfo: SystemInfo{NumCPU: 4},
			Benchmarks: []BenchmarkResult{
				{Implementation: "IntegerStack", NumWorkers: 1, NumInserted: 1000, NumRemoved: 1000, ActualElapsed: "1ms"},
			},
		},
	}

	grouped := groupByCPU(sessions)
	require.Len(t, grouped, 2)

	assert.Equal(t, []float64{1000}, grouped[2]["IntegerQueue"][4])
	assert.NotContains(t, grouped[2], "IntegerStack")
	assert.Equal(t, []float64{500}, grouped[4]["IntegerStack"][1])
}

func TestBuildStats(t *testing.T) {
	vals := make([]float64, 0, 100)
	for i := 100; i >= 1; i-- {
		vals = append(vals, float64(i))
	}

	stats := buildStats(map[float64][]float64{16: vals})
	require.Len(t, stats, 1)

	s := stats[0]
	assert.Equal(t, 16.0, s.orig)
	assert.Equal(t, 3.0, s.min)  // mean of 1..5
	assert.Equal(t, 98.0, s.max) // mean of 96..100
	assert.Equal(t, 50.0, s.median)
}

func TestAverageOfRangeFallsBackToMedian(t *testing.T) {
	assert.Equal(t, 2.0, averageOfRange([]float64{1, 2, 3}, 0, 0.05))
	assert.Zero(t, averageOfRange(nil, 0, 1))
}

func TestFormatNs(t *testing.T) {
	assert.Equal(t, "12ns", formatNs(12))
	assert.Equal(t, "1.5µs", formatNs(1500))
	assert.Equal(t, "2.0ms", formatNs(2e6))
	assert.Equal(t, "3.00s", formatNs(3e9))
}
