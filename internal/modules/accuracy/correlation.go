package accuracy

import (
	"github.com/aristath/esglens/internal/modules/dataset"
	"github.com/aristath/esglens/pkg/formulas"
)

// scoreCorrelations computes the Pearson correlation for each configured
// variable pair over the full dataset and scores it against the reference
// correlation. Rows missing either cell are excluded pairwise, so a gap in
// GrowthRate only affects the growth pair.
func (e *Engine) scoreCorrelations(ds *dataset.Dataset) ComponentScore {
	metrics := make([]MetricResult, 0, len(e.cfg.Correlations))

	for _, t := range e.cfg.Correlations {
		xs, ys := ds.PairedColumns(t.X, t.Y)
		if t.Optional && len(xs) == 0 {
			// No record carries both cells; skip instead of scoring a
			// vacuous zero coefficient.
			continue
		}

		corr := formulas.Correlation(xs, ys)
		if !formulas.IsFinite(corr) {
			// Zero variance in either variable leaves the coefficient
			// undefined; treat it as no correlation.
			corr = 0
		}

		acc := e.cfg.accuracy(corr, t.Target, e.cfg.CorrelationTolerance)
		metrics = append(metrics, MetricResult{
			Name:     t.Name,
			Target:   t.Target,
			Actual:   corr,
			Accuracy: acc,
			Grade:    MetricGrade(acc),
		})
	}

	score := meanAccuracy(metrics)
	e.log.Debug().Float64("score", score).Int("pairs", len(metrics)).Msg("Correlation component scored")

	return ComponentScore{
		Name:    ComponentCorrelations,
		Score:   score,
		Metrics: metrics,
	}
}
