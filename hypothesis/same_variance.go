package hypothesis

import (
	"context"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/statware/hypothesis-algorithms/common"
	"github.com/statware/hypothesis-algorithms/distribution"
	"github.com/statware/hypothesis-algorithms/model"
	"github.com/statware/hypothesis-algorithms/utils"
	"go.uber.org/zap"
)

// SameVarianceHypothesis solves problems of the following kind.
//
// Given: significance ratio, sample of a random variable X, sample of a
// random variable Y.
// To figure out: is it appropriate to assume Var(X) = Var(Y)?
type SameVarianceHypothesis struct {
	xSample      model.Sample
	ySample      model.Sample
	significance float64
}

// NewSameVarianceHypothesis performs no validation: the significance and
// the freedom degrees are only checked when the hypothesis is solved.
func NewSameVarianceHypothesis(xSample, ySample model.Sample, significance float64) *SameVarianceHypothesis {
	return &SameVarianceHypothesis{
		xSample:      append(model.Sample{}, xSample...),
		ySample:      append(model.Sample{}, ySample...),
		significance: significance,
	}
}

// Solve reports whether the equal variance hypothesis is not rejected at
// the given significance level.
func (h *SameVarianceHypothesis) Solve(ctx context.Context) (bool, error) {
	verdict, err := h.Verdict(ctx)
	if err != nil {
		return false, err
	}
	return verdict.Accepted, nil
}

// Verdict solves the hypothesis with the Fisher-Snedecor test and keeps
// the compared statistics for diagnostics.
func (h *SameVarianceHypothesis) Verdict(ctx context.Context) (*model.Verdict, error) {
	logger := utils.GetLogger(ctx)

	xUsv, err := unbiasedSampleVariance(h.xSample)
	if err != nil {
		logger.Error("x sample variance failed", zap.Error(err))
		return nil, err
	}
	yUsv, err := unbiasedSampleVariance(h.ySample)
	if err != nil {
		logger.Error("y sample variance failed", zap.Error(err))
		return nil, err
	}

	maxUsv, minUsv := math.Max(xUsv, yUsv), math.Min(xUsv, yUsv)

	// the freedom degrees pair follows the ratio orientation: the sample
	// with the larger variance shapes the numerator, X on an exact tie
	var freedomDegrees1, freedomDegrees2 float64
	if maxUsv == xUsv {
		freedomDegrees1 = float64(h.xSample.Len() - 1)
		freedomDegrees2 = float64(h.ySample.Len() - 1)
	} else {
		freedomDegrees1 = float64(h.ySample.Len() - 1)
		freedomDegrees2 = float64(h.xSample.Len() - 1)
	}

	critical, err := distribution.CriticalValue(ctx, distribution.FisherSnedecorKind,
		[]float64{freedomDegrees1, freedomDegrees2}, h.significance)
	if err != nil {
		logger.Error("fisher-snedecor critical value failed", zap.Error(err),
			zap.Float64("freedomDegrees1", freedomDegrees1),
			zap.Float64("freedomDegrees2", freedomDegrees2))
		return nil, err
	}

	observed := maxUsv / minUsv

	logger.Info("fisher-snedecor test solved",
		zap.Float64("observed", utils.FormatFloat(observed, 3)),
		zap.Float64("critical", utils.FormatFloat(critical, 3)))

	return &model.Verdict{
		Accepted: observed < critical,
		Observed: observed,
		Critical: critical,
	}, nil
}

// unbiasedSampleVariance divides the squared deviations by n - 1.
func unbiasedSampleVariance(sample model.Sample) (float64, error) {
	res, err := stats.SampleVariance(stats.Float64Data(sample))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrorInvalidValue, err)
	}
	return res, nil
}
