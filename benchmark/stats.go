package benchmark

import (
	"fmt"
	"io"
	"math"
	"sort"
)

// Stats summarizes a set of throughput samples.
type Stats struct {
	Mean   float64
	Median float64
	StdDev float64
}

// Summarize computes mean, median, and sample standard deviation over the
// given samples. The standard deviation uses the N-1 denominator and is
// defined as exactly 0 when fewer than two samples are present, so a
// single-trial run never divides by zero. Median averages the middle pair
// for an even sample count.
func Summarize(samples []float64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(len(samples))

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	var median float64
	if len(sorted)%2 == 0 {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	} else {
		median = sorted[len(sorted)/2]
	}

	stdDev := 0.0
	if len(samples) > 1 {
		sumSquaredDiff := 0.0
		for _, s := range samples {
			diff := s - mean
			sumSquaredDiff += diff * diff
		}
		stdDev = math.Sqrt(sumSquaredDiff / float64(len(samples)-1))
	}

	return Stats{Mean: mean, Median: median, StdDev: stdDev}
}

// writeSamples renders one line per trial with its throughput sample.
func writeSamples(w io.Writer, samples []float64, indent string) {
	for i, s := range samples {
		fmt.Fprintf(w, "%sTrial %d: %.2f verifications/second\n", indent, i+1, s)
	}
}

// writeStats renders aggregate statistics with the given indent.
func writeStats(w io.Writer, st Stats, indent string) {
	fmt.Fprintf(w, "%sAverage: %.2f verifications/second\n", indent, st.Mean)
	fmt.Fprintf(w, "%sMedian:  %.2f verifications/second\n", indent, st.Median)
	fmt.Fprintf(w, "%sStd Dev: %.2f\n", indent, st.StdDev)
}
