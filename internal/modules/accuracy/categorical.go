package accuracy

import (
	"github.com/aristath/esglens/internal/modules/dataset"
)

// scoreCategories verifies that the mean ESG score within each category of
// one dimension (industry or region) falls near its expected reference
// band. Categories appear in dataset first-appearance order; categories
// absent from the bucket table use the default tier.
func (e *Engine) scoreCategories(ds *dataset.Dataset, table CategoryTable, componentName string) ComponentScore {
	var categories []string
	switch table.Dimension {
	case "Region":
		categories = ds.Regions()
	default:
		categories = ds.Industries()
	}

	extract := func(r *dataset.Record) string {
		if table.Dimension == "Region" {
			return r.Region
		}
		return r.Industry
	}

	metrics := make([]MetricResult, 0, len(categories))
	for _, category := range categories {
		bucket := table.Lookup(category)

		sum := 0.0
		count := 0
		for i := range ds.Records {
			r := &ds.Records[i]
			if extract(r) != category || r.IsMissing("ESG_Overall") {
				continue
			}
			sum += r.ESGOverall
			count++
		}

		var acc, mean float64
		if count == 0 {
			// Degenerate group: all members lack an ESG score. Zero score,
			// not a failure.
			acc = 0
		} else {
			mean = sum / float64(count)
			acc = e.cfg.accuracy(mean, bucket.Expected, table.Tolerance)
		}

		metrics = append(metrics, MetricResult{
			Name:     category,
			Target:   bucket.Expected,
			Actual:   mean,
			Accuracy: acc,
			Grade:    CategoryGrade(acc),
		})
	}

	score := meanAccuracy(metrics)
	e.log.Debug().
		Str("dimension", table.Dimension).
		Float64("score", score).
		Int("categories", len(metrics)).
		Msg("Categorical component scored")

	return ComponentScore{
		Name:    componentName,
		Score:   score,
		Metrics: metrics,
	}
}
