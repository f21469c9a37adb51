// Package situation holds the data sources of the normal distribution
// goodness of fit test. A problem situation resolves to a pair of
// frequency samples: the observed one and the expected one.
package situation

import "github.com/statware/hypothesis-algorithms/model"

// ProblemSituation is the data source consumed by the normal
// distribution hypothesis. Implementations guarantee that the empirical
// and theoretical samples agree in length and bin order.
type ProblemSituation interface {
	EmpiricalSample() model.Sample

	// TheoreticalSample may derive the expected frequencies on demand;
	// the result is a pure function of the constructed state.
	TheoreticalSample() (model.Sample, error)

	Significance() float64
}
