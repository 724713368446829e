package accuracy

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aristath/esglens/internal/modules/dataset"
)

// newTestEngine builds an engine with the reference configuration
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	return engine
}

// newDataset wraps records in a dataset carrying the full column schema
func newDataset(records ...dataset.Record) *dataset.Dataset {
	return &dataset.Dataset{
		Records: records,
		Columns: dataset.Columns,
	}
}

// record builds a company-year observation with sane defaults so tests
// only spell out the fields they care about.
func record(company string, esg float64, mutate ...func(*dataset.Record)) dataset.Record {
	r := dataset.Record{
		Company:           company,
		Year:              2024,
		Industry:          "Technology",
		Region:            "Europe",
		Revenue:           1000,
		MarketCap:         2000,
		ProfitMargin:      10,
		CarbonEmissions:   500,
		EnergyConsumption: 300,
		WaterUsage:        200,
		ESGOverall:        esg,
		ESGEnvironmental:  esg,
		ESGSocial:         esg,
		ESGGovernance:     esg,
	}
	growth := 5.0
	r.GrowthRate = &growth
	for _, m := range mutate {
		m(&r)
	}
	return r
}

func growthRate(v float64) func(*dataset.Record) {
	return func(r *dataset.Record) {
		g := v
		r.GrowthRate = &g
	}
}

func noGrowth() func(*dataset.Record) {
	return func(r *dataset.Record) {
		r.GrowthRate = nil
		r.MarkMissing("GrowthRate")
	}
}
