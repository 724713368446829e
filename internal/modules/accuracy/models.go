package accuracy

import (
	"time"

	"github.com/aristath/esglens/internal/modules/dataset"
)

// Component names in scorecard order
const (
	ComponentCorrelations  = "Critical Correlations"
	ComponentIndustry      = "Industry Patterns"
	ComponentRegion        = "Regional Variations"
	ComponentMarket        = "Market Dynamics"
	ComponentDataQuality   = "Data Quality"
	ComponentFunctionality = "Chart Functionality"
)

// MetricResult is one scored metric: a correlation pair, a category mean,
// a market-dynamics effect, or a data-quality sub-score.
type MetricResult struct {
	Name     string  `json:"name" msgpack:"name"`
	Target   float64 `json:"target" msgpack:"target"`
	Actual   float64 `json:"actual" msgpack:"actual"`
	Accuracy float64 `json:"accuracy" msgpack:"accuracy"`
	Grade    string  `json:"grade" msgpack:"grade"`
}

// ComponentScore is one of the six weighted scorecard components
type ComponentScore struct {
	Name         string         `json:"name" msgpack:"name"`
	Score        float64        `json:"score" msgpack:"score"`
	Weight       float64        `json:"weight" msgpack:"weight"`
	Contribution float64        `json:"contribution" msgpack:"contribution"`
	Grade        string         `json:"grade" msgpack:"grade"`
	Metrics      []MetricResult `json:"metrics" msgpack:"metrics"`
}

// Scorecard is the fully aggregated accuracy report. It is constructed
// fresh per evaluation and never mutated afterwards.
type Scorecard struct {
	ID                 string           `json:"id" msgpack:"id"`
	GeneratedAt        time.Time        `json:"generated_at" msgpack:"generated_at"`
	DatasetFingerprint string           `json:"dataset_fingerprint" msgpack:"dataset_fingerprint"`
	Summary            dataset.Summary  `json:"summary" msgpack:"summary"`
	Components         []ComponentScore `json:"components" msgpack:"components"`
	TotalScore         float64          `json:"total_score" msgpack:"total_score"`
	Grade              string           `json:"grade" msgpack:"grade"`
	Description        string           `json:"description" msgpack:"description"`
}

// Component returns the component with the given name, or nil
func (s *Scorecard) Component(name string) *ComponentScore {
	for i := range s.Components {
		if s.Components[i].Name == name {
			return &s.Components[i]
		}
	}
	return nil
}

// meanAccuracy averages the accuracy values of a set of metric results
func meanAccuracy(metrics []MetricResult) float64 {
	if len(metrics) == 0 {
		return 0
	}
	total := 0.0
	for _, m := range metrics {
		total += m.Accuracy
	}
	return total / float64(len(metrics))
}
