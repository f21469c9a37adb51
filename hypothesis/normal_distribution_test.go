package hypothesis

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/statware/hypothesis-algorithms/common"
	"github.com/statware/hypothesis-algorithms/model"
	"github.com/statware/hypothesis-algorithms/situation"
)

func almostEqual(a, b, d float64) bool {
	return math.Abs(a-b) < d
}

func mustComplete(t *testing.T, empirical, theoretical model.Sample, significance float64) *situation.Complete {
	t.Helper()
	s, err := situation.NewComplete(empirical, theoretical, significance)
	if err != nil {
		t.Fatalf("NewComplete failed: %v", err)
	}
	return s
}

func TestNormalDistributionSolveComplete(t *testing.T) {
	ctx := context.Background()

	empirical := model.Sample{7, 12, 49, 66, 83, 67, 23, 13}
	theoretical := model.Sample{5, 9, 46, 60, 89, 81, 19, 11}

	h, err := NewNormalDistributionHypothesis(mustComplete(t, empirical, theoretical, 0.05))
	if err != nil {
		t.Fatalf("NewNormalDistributionHypothesis failed: %v", err)
	}

	verdict, err := h.Verdict(ctx)
	if err != nil {
		t.Fatalf("Verdict failed: %v", err)
	}

	// sum of (e-t)^2/t over the 8 bins
	if !almostEqual(verdict.Observed, 6.625641, 1e-6) {
		t.Errorf("observed = %v, expected 6.625641", verdict.Observed)
	}
	// chi-squared right tail at 8-2-1 freedom degrees
	if !almostEqual(verdict.Critical, 11.0705, 0.001) {
		t.Errorf("critical = %v, expected 11.0705", verdict.Critical)
	}
	if !verdict.Accepted {
		t.Errorf("expected the normality hypothesis to not be rejected")
	}

	accepted, err := h.Solve(ctx)
	if err != nil || accepted != verdict.Accepted {
		t.Errorf("Solve = (%v, %v), expected (%v, nil)", accepted, err, verdict.Accepted)
	}
}

func TestNormalDistributionZeroObserved(t *testing.T) {
	ctx := context.Background()
	sample := model.Sample{10, 20, 30, 40}

	for _, significance := range []float64{0.01, 0.05, 0.5, 0.99} {
		h, err := NewNormalDistributionHypothesis(mustComplete(t, sample, sample, significance))
		if err != nil {
			t.Fatalf("NewNormalDistributionHypothesis failed: %v", err)
		}
		verdict, err := h.Verdict(ctx)
		if err != nil {
			t.Fatalf("Verdict failed at significance %v: %v", significance, err)
		}
		if verdict.Observed != 0 {
			t.Errorf("observed = %v, expected exactly 0", verdict.Observed)
		}
		if !verdict.Accepted {
			t.Errorf("identical samples rejected at significance %v", significance)
		}
	}
}

func TestNormalDistributionSolveIncomplete(t *testing.T) {
	ctx := context.Background()

	bins := []model.BinRange{
		{Lower: 22, Upper: 24},
		{Lower: 24, Upper: 26},
		{Lower: 26, Upper: 28},
		{Lower: 28, Upper: 30},
		{Lower: 30, Upper: 32},
		{Lower: 32, Upper: 34},
	}
	counts := model.Sample{2, 12, 34, 40, 10, 2}

	s, err := situation.NewIncomplete(bins, counts, 0.01)
	if err != nil {
		t.Fatalf("NewIncomplete failed: %v", err)
	}
	h, err := NewNormalDistributionHypothesis(s)
	if err != nil {
		t.Fatalf("NewNormalDistributionHypothesis failed: %v", err)
	}

	verdict, err := h.Verdict(ctx)
	if err != nil {
		t.Fatalf("Verdict failed: %v", err)
	}

	if verdict.Observed <= 0 {
		t.Errorf("observed = %v, expected positive", verdict.Observed)
	}
	// chi-squared right tail at 6-2-1 freedom degrees
	if !almostEqual(verdict.Critical, 11.3449, 0.001) {
		t.Errorf("critical = %v, expected 11.3449", verdict.Critical)
	}
	if !verdict.Accepted {
		t.Errorf("expected the grouped sample to pass the normality test, verdict %v", verdict.DebugString())
	}
}

func TestNormalDistributionFreedomDegreesInvalid(t *testing.T) {
	ctx := context.Background()

	// 2 bins make -1 freedom degrees, 3 bins make 0
	for _, sample := range []model.Sample{{1, 2}, {1, 2, 3}} {
		h, err := NewNormalDistributionHypothesis(mustComplete(t, sample, sample, 0.05))
		if err != nil {
			t.Fatalf("NewNormalDistributionHypothesis failed: %v", err)
		}
		if _, err := h.Solve(ctx); !errors.Is(err, common.ErrorFreedomDegreesInvalid) {
			t.Errorf("%v bins: expected ErrorFreedomDegreesInvalid, got %v", sample.Len(), err)
		}
	}
}

func TestNormalDistributionZeroTheoreticalFrequency(t *testing.T) {
	ctx := context.Background()

	h, err := NewNormalDistributionHypothesis(
		mustComplete(t, model.Sample{5, 10, 3, 2}, model.Sample{5, 10, 0, 2}, 0.05))
	if err != nil {
		t.Fatalf("NewNormalDistributionHypothesis failed: %v", err)
	}

	verdict, err := h.Verdict(ctx)
	if err != nil {
		t.Fatalf("Verdict failed: %v", err)
	}
	if !math.IsInf(verdict.Observed, 1) {
		t.Errorf("observed = %v, expected +Inf", verdict.Observed)
	}
	if verdict.Accepted {
		t.Errorf("an infinite statistic must reject the hypothesis")
	}

	// zero on both sides makes the statistic NaN, still a rejection
	h, err = NewNormalDistributionHypothesis(
		mustComplete(t, model.Sample{5, 10, 0, 2}, model.Sample{5, 10, 0, 2}, 0.05))
	if err != nil {
		t.Fatalf("NewNormalDistributionHypothesis failed: %v", err)
	}
	verdict, err = h.Verdict(ctx)
	if err != nil {
		t.Fatalf("Verdict failed: %v", err)
	}
	if !math.IsNaN(verdict.Observed) {
		t.Errorf("observed = %v, expected NaN", verdict.Observed)
	}
	if verdict.Accepted {
		t.Errorf("a NaN statistic must reject the hypothesis")
	}
}

func TestNormalDistributionSolveIdempotent(t *testing.T) {
	ctx := context.Background()

	h, err := NewNormalDistributionHypothesis(mustComplete(t,
		model.Sample{7, 12, 49, 66, 83, 67, 23, 13},
		model.Sample{5, 9, 46, 60, 89, 81, 19, 11}, 0.05))
	if err != nil {
		t.Fatalf("NewNormalDistributionHypothesis failed: %v", err)
	}

	first, err := h.Verdict(ctx)
	if err != nil {
		t.Fatalf("first Verdict failed: %v", err)
	}
	second, err := h.Verdict(ctx)
	if err != nil {
		t.Fatalf("second Verdict failed: %v", err)
	}

	if *first != *second {
		t.Fatalf("verdict changed between calls: %v != %v", first.DebugString(), second.DebugString())
	}
}

func TestNewCompleteNormalDistributionHypothesis(t *testing.T) {
	_, err := NewCompleteNormalDistributionHypothesis(model.Sample{1, 2, 3}, model.Sample{1, 2}, 0.05)
	if !errors.Is(err, common.ErrorLengthMismatch) {
		t.Fatalf("expected ErrorLengthMismatch, got %v", err)
	}

	h, err := NewCompleteNormalDistributionHypothesis(
		model.Sample{10, 20, 30, 40}, model.Sample{10, 20, 30, 40}, 0.05)
	if err != nil {
		t.Fatalf("NewCompleteNormalDistributionHypothesis failed: %v", err)
	}
	if accepted, err := h.Solve(context.Background()); err != nil || !accepted {
		t.Fatalf("Solve = (%v, %v), expected (true, nil)", accepted, err)
	}
}

func TestNewNormalDistributionHypothesisNil(t *testing.T) {
	if _, err := NewNormalDistributionHypothesis(nil); !errors.Is(err, common.ErrorInvalidValue) {
		t.Fatalf("expected ErrorInvalidValue, got %v", err)
	}
}
