package situation

import (
	"github.com/statware/hypothesis-algorithms/common"
	"github.com/statware/hypothesis-algorithms/distribution"
	"github.com/statware/hypothesis-algorithms/model"
)

// Complete is a fully specified problem: both the empirical and the
// theoretical frequencies are given directly.
type Complete struct {
	empirical    model.Sample
	theoretical  model.Sample
	significance float64
}

func NewComplete(empirical, theoretical model.Sample, significance float64) (*Complete, error) {
	if empirical.IsEmpty() {
		return nil, common.ErrorInvalidValue
	}
	if empirical.Len() != theoretical.Len() {
		return nil, common.ErrorLengthMismatch
	}
	if err := distribution.CheckSignificance(significance); err != nil {
		return nil, err
	}

	return &Complete{
		empirical:    append(model.Sample{}, empirical...),
		theoretical:  append(model.Sample{}, theoretical...),
		significance: significance,
	}, nil
}

func (s *Complete) EmpiricalSample() model.Sample {
	return s.empirical
}

func (s *Complete) TheoreticalSample() (model.Sample, error) {
	return s.theoretical, nil
}

func (s *Complete) Significance() float64 {
	return s.significance
}
