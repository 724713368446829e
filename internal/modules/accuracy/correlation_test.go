package accuracy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/esglens/internal/modules/dataset"
)

func findMetric(t *testing.T, c ComponentScore, name string) MetricResult {
	t.Helper()
	for _, m := range c.Metrics {
		if m.Name == name {
			return m
		}
	}
	t.Fatalf("metric %q not found", name)
	return MetricResult{}
}

func TestScoreCorrelationsPerfectPair(t *testing.T) {
	engine := newTestEngine(t)

	// MarketCap = 2 * ESG_Overall with varying ESG: perfect correlation
	var records []dataset.Record
	for i := 0; i < 20; i++ {
		esg := 40 + float64(i)
		records = append(records, record("C", esg, func(r *dataset.Record) {
			r.MarketCap = 2 * esg
		}))
	}

	c := engine.scoreCorrelations(newDataset(records...))

	m := findMetric(t, c, "MarketCap <-> ESG Overall")
	assert.InDelta(t, 1.0, m.Actual, 1e-9)
	// Perfect correlation far overshoots the 0.35 reference and floors at 0
	assert.Equal(t, 0.0, m.Accuracy)
	assert.Equal(t, "C NEEDS WORK", m.Grade)
}

func TestScoreCorrelationsZeroVariance(t *testing.T) {
	engine := newTestEngine(t)

	// Constant ESG leaves every ESG-involving coefficient undefined; the
	// module must report 0 correlation, not NaN.
	var records []dataset.Record
	for i := 0; i < 10; i++ {
		records = append(records, record("C", 60))
	}

	c := engine.scoreCorrelations(newDataset(records...))

	m := findMetric(t, c, "MarketCap <-> ESG Overall")
	assert.Equal(t, 0.0, m.Actual)
	// accuracy(0, 0.35) = 0: a flat dataset shows none of the expected signal
	assert.Equal(t, 0.0, m.Accuracy)

	for _, m := range c.Metrics {
		assert.False(t, m.Actual != m.Actual, "metric %q is NaN", m.Name)
	}
}

func TestScoreCorrelationsGrowthPairConditional(t *testing.T) {
	engine := newTestEngine(t)

	// No record carries a growth rate: the growth pair is skipped entirely
	var records []dataset.Record
	for i := 0; i < 10; i++ {
		records = append(records, record("C", 40+float64(i), noGrowth()))
	}
	c := engine.scoreCorrelations(newDataset(records...))
	require.Len(t, c.Metrics, 8)
	for _, m := range c.Metrics {
		assert.NotEqual(t, "Growth <-> Energy Consumption", m.Name)
	}

	// One record with a growth rate brings the pair back
	records[3] = record("C", 43, growthRate(4))
	records[7] = record("C", 47, growthRate(8))
	c = engine.scoreCorrelations(newDataset(records...))
	require.Len(t, c.Metrics, 9)
	findMetric(t, c, "Growth <-> Energy Consumption")
}

func TestScoreCorrelationsAggregateIsMean(t *testing.T) {
	engine := newTestEngine(t)

	var records []dataset.Record
	for i := 0; i < 12; i++ {
		records = append(records, record("C", 40+float64(i)))
	}
	c := engine.scoreCorrelations(newDataset(records...))

	sum := 0.0
	for _, m := range c.Metrics {
		sum += m.Accuracy
	}
	assert.InDelta(t, sum/float64(len(c.Metrics)), c.Score, 1e-9)
}
