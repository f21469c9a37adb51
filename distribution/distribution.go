// Package distribution wraps the gonum probability distributions behind
// the critical value computation of the hypothesis tests.
package distribution

import (
	"context"
	"fmt"
	"math"

	"github.com/statware/hypothesis-algorithms/common"
	"github.com/statware/hypothesis-algorithms/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"
)

// Kind names a distribution family supported by the critical value
// service. New families can be added without breaking callers.
type Kind int

const (
	ChiSquaredKind Kind = iota + 1
	FisherSnedecorKind
)

func (k Kind) String() string {
	switch k {
	case ChiSquaredKind:
		return "chi-squared"
	case FisherSnedecorKind:
		return "fisher-snedecor"
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// CheckSignificance reports whether the significance ratio lies strictly
// between 0 and 1.
func CheckSignificance(significance float64) error {
	if !(significance > 0 && significance < 1) {
		return common.ErrorSignificanceInvalid
	}
	return nil
}

// CriticalValue computes the right tail critical value x of the given
// distribution, such that P(X > x) = significance.
//
// The chi-squared kind takes exactly one shape parameter (the freedom
// degrees), the fisher-snedecor kind exactly two; every freedom degrees
// value must be a positive finite real.
func CriticalValue(ctx context.Context, kind Kind, shapeParams []float64,
	significance float64) (res float64, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("critical value computation panic!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()),
				zap.Any("shapeParams", shapeParams))
			res, err = 0, common.ErrorDistributionParametersInvalid
		}
	}()

	if err := CheckSignificance(significance); err != nil {
		return 0, err
	}

	// The critical value corresponds to the `(1 - significance)`-quantile.
	// Quantile(p) finds x such that P(X <= x) = p, and we need
	// P(X > x) = significance, which is P(X <= x) = 1 - significance.
	probability := 1 - significance

	switch kind {
	case ChiSquaredKind:
		if len(shapeParams) != 1 {
			return 0, fmt.Errorf("%w: chi-squared takes 1 shape parameter, got %v",
				common.ErrorFreedomDegreesInvalid, len(shapeParams))
		}
		if !validFreedomDegrees(shapeParams[0]) {
			return 0, common.ErrorFreedomDegreesInvalid
		}
		chiSquaredDist := distuv.ChiSquared{K: shapeParams[0]}
		return chiSquaredDist.Quantile(probability), nil
	case FisherSnedecorKind:
		if len(shapeParams) != 2 {
			return 0, fmt.Errorf("%w: fisher-snedecor takes 2 shape parameters, got %v",
				common.ErrorFreedomDegreesInvalid, len(shapeParams))
		}
		if !validFreedomDegrees(shapeParams[0]) || !validFreedomDegrees(shapeParams[1]) {
			return 0, common.ErrorFreedomDegreesInvalid
		}
		fisherSnedecorDist := distuv.F{D1: shapeParams[0], D2: shapeParams[1]}
		return fisherSnedecorDist.Quantile(probability), nil
	}

	return 0, fmt.Errorf("%w: unknown distribution kind %v", common.ErrorInvalidValue, int(kind))
}

func validFreedomDegrees(freedomDegrees float64) bool {
	// fd > 0 is false for NaN
	return freedomDegrees > 0 && !math.IsInf(freedomDegrees, 1)
}

// NewNormal builds a normal distribution from an estimated mean and
// standard deviation, rejecting parameters the distribution cannot be
// constructed from (zero or negative deviation, non finite values).
func NewNormal(mean, stdDev float64) (distuv.Normal, error) {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return distuv.Normal{}, common.ErrorDistributionParametersInvalid
	}
	if !(stdDev > 0) || math.IsInf(stdDev, 1) {
		return distuv.Normal{}, common.ErrorDistributionParametersInvalid
	}
	return distuv.Normal{Mu: mean, Sigma: stdDev}, nil
}
