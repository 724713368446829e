package accuracy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/esglens/internal/modules/dataset"
)

func TestScoreMarketDynamicsInsufficientData(t *testing.T) {
	engine := newTestEngine(t)

	ds := newDataset(
		record("A", 10),
		record("B", 50),
		record("C", 90),
		record("D", 70),
	)

	c := engine.scoreMarketDynamics(ds)
	assert.Equal(t, ComponentMarket, c.Name)
	assert.Equal(t, 0.0, c.Score)
	assert.Empty(t, c.Metrics)
}

func TestScoreMarketDynamicsReferenceEffects(t *testing.T) {
	engine := newTestEngine(t)

	// ESG 1..10 splits into bottom {1,2} and top {8,9,10}. The bottom
	// group trades at a 2.0x cap multiple on 1000 revenue; the top at
	// 2.7x on 1250, hitting the 35% premium and 25% size effect exactly.
	var records []dataset.Record
	for i := 1; i <= 10; i++ {
		esg := float64(i)
		records = append(records, record("C", esg, func(r *dataset.Record) {
			switch {
			case esg <= 2:
				r.Revenue = 1000
				r.MarketCap = 2000
			case esg >= 8:
				r.Revenue = 1250
				r.MarketCap = 3375
			}
		}))
	}

	c := engine.scoreMarketDynamics(newDataset(records...))
	require.Len(t, c.Metrics, 2)

	premium := findMetric(t, c, MetricESGPremium)
	assert.InDelta(t, 35.0, premium.Actual, 1e-9)
	assert.InDelta(t, 100.0, premium.Accuracy, 1e-9)

	size := findMetric(t, c, MetricESGSizeEffect)
	assert.InDelta(t, 25.0, size.Actual, 1e-9)
	assert.InDelta(t, 100.0, size.Accuracy, 1e-9)

	assert.InDelta(t, 100.0, c.Score, 1e-9)
}

func TestQuintileGroupBoundariesAreInclusive(t *testing.T) {
	engine := newTestEngine(t)

	var records []dataset.Record
	for i := 1; i <= 10; i++ {
		records = append(records, record("C", float64(i)))
	}

	top, bottom := engine.quintileGroups(newDataset(records...))
	require.Equal(t, 3, top.Len())
	require.Equal(t, 2, bottom.Len())

	for _, r := range top.Records {
		assert.GreaterOrEqual(t, r.ESGOverall, 8.0)
	}
	for _, r := range bottom.Records {
		assert.LessOrEqual(t, r.ESGOverall, 2.0)
	}
}

func TestCapRevenueMultipleSkipsZeroRevenue(t *testing.T) {
	ds := newDataset(
		record("A", 50, func(r *dataset.Record) {
			r.Revenue = 0
			r.MarketCap = 999999
		}),
		record("B", 50, func(r *dataset.Record) {
			r.Revenue = 100
			r.MarketCap = 300
		}),
	)
	assert.InDelta(t, 3.0, capRevenueMultiple(ds), 1e-9)
}

func TestPercentEffect(t *testing.T) {
	assert.InDelta(t, 35.0, percentEffect(2.7, 2.0), 1e-9)
	assert.InDelta(t, -50.0, percentEffect(1.0, 2.0), 1e-9)
	assert.Equal(t, 0.0, percentEffect(5, 0))
}
