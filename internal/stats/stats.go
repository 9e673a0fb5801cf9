// Package stats generates normal-ish samples and summarises them.
package stats

import (
	"errors"
	"math"
	"slices"
	"time"

	"gridsim/internal/core"
)

// ErrNoData is returned when summarising an empty sample.
var ErrNoData = errors.New("no data")

// DefaultSampleSize is the number of samples drawn by the dashboard.
const DefaultSampleSize = 500

// DefaultBins is the histogram resolution used by the dashboard.
const DefaultBins = 20

// Summary holds the descriptive statistics of a sample.
type Summary struct {
	Count    int
	Mean     float64
	Median   float64
	Variance float64
	StdDev   float64
	Min      float64
	Max      float64
}

// Generate draws n samples, each the sum of 12 uniforms shifted and scaled to
// mean 100 and standard deviation 15.
func Generate(n int, src core.Float64Source) []float64 {
	if n <= 0 {
		return nil
	}
	if src == nil {
		src = core.NewRNG(time.Now().UnixNano())
	}
	out := make([]float64, n)
	for i := range out {
		sum := 0.0
		for k := 0; k < 12; k++ {
			sum += src.Float64()
		}
		out[i] = (sum-6)*15 + 100
	}
	return out
}

// Summarize computes the population statistics of data.
func Summarize(data []float64) (Summary, error) {
	if len(data) == 0 {
		return Summary{}, ErrNoData
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	mean := sum / float64(len(data))

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	variance := 0.0
	for _, v := range data {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(data))

	return Summary{
		Count:    len(data),
		Mean:     mean,
		Median:   median,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      sorted[0],
		Max:      sorted[len(sorted)-1],
	}, nil
}

// Histogram counts data into bins equal-width buckets spanning [min, max].
// The maximum lands in the last bucket; a sample with no spread lands in the
// first one.
func Histogram(data []float64, bins int) []int {
	if bins <= 0 {
		bins = DefaultBins
	}
	counts := make([]int, bins)
	if len(data) == 0 {
		return counts
	}
	lo, hi := slices.Min(data), slices.Max(data)
	width := (hi - lo) / float64(bins)
	for _, v := range data {
		idx := 0
		if width > 0 {
			idx = int(math.Floor((v - lo) / width))
		}
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts
}
