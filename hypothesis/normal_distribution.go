// Package hypothesis implements the decision engines of the statistical
// hypothesis tests. Every engine is immutable once constructed, so
// distinct instances can be solved concurrently.
package hypothesis

import (
	"context"

	"github.com/statware/hypothesis-algorithms/common"
	"github.com/statware/hypothesis-algorithms/distribution"
	"github.com/statware/hypothesis-algorithms/model"
	"github.com/statware/hypothesis-algorithms/situation"
	"github.com/statware/hypothesis-algorithms/utils"
	"go.uber.org/zap"
)

// NormalDistributionHypothesis solves problems of the following kind.
//
// Given: significance ratio, empirical sample, theoretical sample.
// To figure out: is it appropriate to assume that the sample is a sample
// of a normal distribution?
type NormalDistributionHypothesis struct {
	situation situation.ProblemSituation
}

func NewNormalDistributionHypothesis(problemSituation situation.ProblemSituation) (*NormalDistributionHypothesis, error) {
	if problemSituation == nil {
		return nil, common.ErrorInvalidValue
	}
	return &NormalDistributionHypothesis{situation: problemSituation}, nil
}

// NewCompleteNormalDistributionHypothesis builds the hypothesis straight
// from the two frequency samples.
func NewCompleteNormalDistributionHypothesis(empirical, theoretical model.Sample,
	significance float64) (*NormalDistributionHypothesis, error) {
	s, err := situation.NewComplete(empirical, theoretical, significance)
	if err != nil {
		return nil, err
	}
	return NewNormalDistributionHypothesis(s)
}

// Solve reports whether the normality hypothesis is not rejected at the
// significance level of the problem situation.
func (h *NormalDistributionHypothesis) Solve(ctx context.Context) (bool, error) {
	verdict, err := h.Verdict(ctx)
	if err != nil {
		return false, err
	}
	return verdict.Accepted, nil
}

// Verdict solves the hypothesis with the chi squared goodness of fit
// test and keeps the compared statistics for diagnostics.
func (h *NormalDistributionHypothesis) Verdict(ctx context.Context) (*model.Verdict, error) {
	logger := utils.GetLogger(ctx)

	empirical := h.situation.EmpiricalSample()
	theoretical, err := h.situation.TheoreticalSample()
	if err != nil {
		logger.Error("derive theoretical sample failed", zap.Error(err))
		return nil, err
	}
	if empirical.Len() != theoretical.Len() {
		return nil, common.ErrorLengthMismatch
	}

	// one freedom degree goes to the chi squared constraint, two to the
	// normal distribution parameters estimated from the same data
	freedomDegrees := float64(empirical.Len()) - 2 - 1

	critical, err := distribution.CriticalValue(ctx, distribution.ChiSquaredKind,
		[]float64{freedomDegrees}, h.situation.Significance())
	if err != nil {
		logger.Error("chi squared critical value failed", zap.Error(err),
			zap.Float64("freedomDegrees", freedomDegrees))
		return nil, err
	}

	// a zero theoretical frequency makes its term +Inf (NaN when the
	// empirical count is zero too); the comparison below then rejects
	observed := 0.0
	for i := range empirical {
		diff := empirical[i] - theoretical[i]
		observed += diff * diff / theoretical[i]
	}

	logger.Info("chi squared test solved",
		zap.Float64("observed", utils.FormatFloat(observed, 3)),
		zap.Float64("critical", utils.FormatFloat(critical, 3)))

	return &model.Verdict{
		Accepted: observed < critical,
		Observed: observed,
		Critical: critical,
	}, nil
}
