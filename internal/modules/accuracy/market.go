package accuracy

import (
	"github.com/aristath/esglens/internal/modules/dataset"
	"github.com/aristath/esglens/pkg/formulas"
)

// Metric names of the market dynamics component
const (
	MetricESGPremium    = "ESG Market Premium"
	MetricESGSizeEffect = "ESG Size Effect"
)

// scoreMarketDynamics tests whether an ESG premium effect exists: top
// quintile companies by ESG score should carry a higher market-cap
// multiple and larger revenue than the bottom quintile.
func (e *Engine) scoreMarketDynamics(ds *dataset.Dataset) ComponentScore {
	top, bottom := e.quintileGroups(ds)

	if top.Len() == 0 || bottom.Len() == 0 {
		// Degenerate split: both sub-scores fall back to 0, not a failure
		e.log.Debug().Int("records", ds.Len()).Msg("Market dynamics skipped, insufficient data for quintile groups")
		return ComponentScore{Name: ComponentMarket, Score: 0}
	}

	premium := percentEffect(capRevenueMultiple(top), capRevenueMultiple(bottom))
	premiumAcc := e.cfg.accuracy(premium, e.cfg.PremiumTarget, e.cfg.PremiumTolerance)

	sizeEffect := percentEffect(formulas.Mean(top.Column("Revenue")), formulas.Mean(bottom.Column("Revenue")))
	sizeAcc := e.cfg.accuracy(sizeEffect, e.cfg.SizeEffectTarget, e.cfg.SizeEffectTolerance)

	metrics := []MetricResult{
		{Name: MetricESGPremium, Target: e.cfg.PremiumTarget, Actual: premium, Accuracy: premiumAcc, Grade: CategoryGrade(premiumAcc)},
		{Name: MetricESGSizeEffect, Target: e.cfg.SizeEffectTarget, Actual: sizeEffect, Accuracy: sizeAcc, Grade: CategoryGrade(sizeAcc)},
	}

	score := meanAccuracy(metrics)
	e.log.Debug().Float64("score", score).Msg("Market dynamics component scored")

	return ComponentScore{
		Name:    ComponentMarket,
		Score:   score,
		Metrics: metrics,
	}
}

// quintileGroups partitions records into the top (>= 80th percentile of
// ESG_Overall) and bottom (<= 20th percentile) groups. Fewer than five
// records cannot form two distinct non-empty quintile groups; both come
// back empty in that case.
func (e *Engine) quintileGroups(ds *dataset.Dataset) (*dataset.Dataset, *dataset.Dataset) {
	top := &dataset.Dataset{Columns: ds.Columns}
	bottom := &dataset.Dataset{Columns: ds.Columns}

	if ds.Len() < 5 {
		return top, bottom
	}

	esg := ds.Column("ESG_Overall")
	upper := formulas.Quantile(e.cfg.TopQuantile, esg)
	lower := formulas.Quantile(e.cfg.BottomQuantile, esg)

	for _, r := range ds.Records {
		if r.IsMissing("ESG_Overall") {
			continue
		}
		if r.ESGOverall >= upper {
			top.Records = append(top.Records, r)
		}
		if r.ESGOverall <= lower {
			bottom.Records = append(bottom.Records, r)
		}
	}

	return top, bottom
}

// capRevenueMultiple returns the mean MarketCap/Revenue ratio of a group,
// skipping records with zero revenue.
func capRevenueMultiple(ds *dataset.Dataset) float64 {
	var multiples []float64
	for _, r := range ds.Records {
		if r.Revenue == 0 || r.IsMissing("Revenue") || r.IsMissing("MarketCap") {
			continue
		}
		multiples = append(multiples, r.MarketCap/r.Revenue)
	}
	return formulas.Mean(multiples)
}

// percentEffect returns the percentage difference of top over bottom.
// A zero bottom value makes the effect undefined; it reports as 0.
func percentEffect(top, bottom float64) float64 {
	if bottom == 0 {
		return 0
	}
	return (top - bottom) / bottom * 100
}
