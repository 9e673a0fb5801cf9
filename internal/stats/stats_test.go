package stats

import (
	"errors"
	"math"
	"slices"
	"testing"

	"gridsim/internal/core"
)

func TestSummarizeKnownData(t *testing.T) {
	s, err := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatal(err)
	}
	if s.Mean != 5 || s.Median != 4.5 || s.Variance != 4 || s.StdDev != 2 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Min != 2 || s.Max != 9 || s.Count != 8 {
		t.Fatalf("unexpected bounds %+v", s)
	}
}

func TestSummarizeOddMedian(t *testing.T) {
	data := []float64{3, 1, 2}
	s, err := Summarize(data)
	if err != nil {
		t.Fatal(err)
	}
	if s.Median != 2 {
		t.Fatalf("median = %g, want 2", s.Median)
	}
	if !slices.Equal(data, []float64{3, 1, 2}) {
		t.Fatal("Summarize reordered its input")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

func TestGenerateDistribution(t *testing.T) {
	data := Generate(20_000, core.NewRNG(11))
	s, err := Summarize(data)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.Mean-100) > 1 {
		t.Fatalf("mean %g too far from 100", s.Mean)
	}
	if math.Abs(s.StdDev-15) > 1 {
		t.Fatalf("std dev %g too far from 15", s.StdDev)
	}
	if s.Min < 10 || s.Max > 190 {
		t.Fatalf("samples outside the reachable range: [%g, %g]", s.Min, s.Max)
	}
}

func TestHistogram(t *testing.T) {
	counts := Histogram([]float64{0, 1, 2, 3, 4, 10}, 5)
	want := []int{2, 2, 1, 0, 1}
	if !slices.Equal(counts, want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
}

func TestHistogramFlatAndEmpty(t *testing.T) {
	if got := Histogram([]float64{3, 3, 3}, 4); !slices.Equal(got, []int{3, 0, 0, 0}) {
		t.Fatalf("flat data counts = %v", got)
	}
	if got := Histogram(nil, 0); len(got) != DefaultBins {
		t.Fatalf("default bins = %d", len(got))
	}
}
