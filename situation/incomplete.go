package situation

import (
	"math"

	"github.com/statware/hypothesis-algorithms/common"
	"github.com/statware/hypothesis-algorithms/distribution"
	"github.com/statware/hypothesis-algorithms/model"
	"gonum.org/v1/gonum/stat"
)

// Incomplete is a grouped problem: only the bin ranges and the empirical
// bin counts are known. The theoretical frequencies are estimated by
// fitting a normal distribution with the method of moments on the bin
// midpoints, weighted by the empirical counts.
type Incomplete struct {
	bins         []model.BinRange
	empirical    model.Sample
	significance float64
}

func NewIncomplete(bins []model.BinRange, empirical model.Sample, significance float64) (*Incomplete, error) {
	if len(bins) == 0 || empirical.IsEmpty() {
		return nil, common.ErrorInvalidValue
	}
	if len(bins) != empirical.Len() {
		return nil, common.ErrorLengthMismatch
	}
	if err := distribution.CheckSignificance(significance); err != nil {
		return nil, err
	}

	return &Incomplete{
		bins:         append([]model.BinRange{}, bins...),
		empirical:    append(model.Sample{}, empirical...),
		significance: significance,
	}, nil
}

func (s *Incomplete) EmpiricalSample() model.Sample {
	return s.empirical
}

func (s *Incomplete) Significance() float64 {
	return s.significance
}

// EstimatedMean is the count weighted average of the bin midpoints.
func (s *Incomplete) EstimatedMean() float64 {
	return stat.Mean(model.Midpoints(s.bins), s.empirical)
}

// EstimatedStdDev is the square root of the count weighted average
// squared deviation of the bin midpoints from the estimated mean.
func (s *Incomplete) EstimatedStdDev() float64 {
	midpoints := model.Midpoints(s.bins)
	mean := stat.Mean(midpoints, s.empirical)
	return math.Sqrt(stat.MomentAbout(2, midpoints, mean, s.empirical))
}

// TheoreticalSample derives the expected frequency of every bin as
// N * (CDF(upper) - CDF(lower)) under the fitted normal distribution,
// where N is the total empirical count. It recomputes the fit on every
// call and depends only on the stored bins and counts.
func (s *Incomplete) TheoreticalSample() (model.Sample, error) {
	normalDist, err := distribution.NewNormal(s.EstimatedMean(), s.EstimatedStdDev())
	if err != nil {
		return nil, err
	}

	total := s.empirical.Sum()

	res := make(model.Sample, 0, len(s.bins))
	for _, bin := range s.bins {
		res = append(res, total*(normalDist.CDF(bin.Upper)-normalDist.CDF(bin.Lower)))
	}
	return res, nil
}
