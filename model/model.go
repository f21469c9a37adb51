package model

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Sample is an ordered sequence of observed real values.
// The order of values never affects the computed statistics,
// but the length drives the freedom degrees of the tests.
type Sample []float64

func (s Sample) Len() int {
	return len(s)
}

func (s Sample) Sum() float64 {
	return floats.Sum(s)
}

func (s Sample) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Sum(s) / float64(len(s))
}

func (s Sample) IsEmpty() bool {
	return len(s) == 0
}

// BinRange is one value interval of a grouped (binned) sample.
type BinRange struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

func (b BinRange) Midpoint() float64 {
	return (b.Lower + b.Upper) / 2
}

func (b BinRange) DebugString() string {
	return fmt.Sprintf("[%v, %v]", b.Lower, b.Upper)
}

// Midpoints collects the midpoint of every bin, keeping the bin order.
func Midpoints(bins []BinRange) []float64 {
	res := make([]float64, 0, len(bins))
	for _, bin := range bins {
		res = append(res, bin.Midpoint())
	}
	return res
}

// Verdict is the full outcome of a solved hypothesis:
// the boolean decision plus the compared statistics for diagnostics.
type Verdict struct {
	// Accepted is true when the hypothesis is not rejected,
	// i.e. the observed statistic stays below the critical value.
	Accepted bool    `json:"accepted"`
	Observed float64 `json:"observed"`
	Critical float64 `json:"critical"`
}

func (v *Verdict) DebugString() string {
	return fmt.Sprintf("accepted: %v, observed: %v, critical: %v", v.Accepted, v.Observed, v.Critical)
}
