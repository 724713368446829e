package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(company string, year int, industry, region string, esg float64) Record {
	growth := 5.0
	return Record{
		Company:    company,
		Year:       year,
		Industry:   industry,
		Region:     region,
		Revenue:    1000,
		MarketCap:  2000,
		ESGOverall: esg,
		GrowthRate: &growth,
	}
}

func filterFixture() *Dataset {
	return &Dataset{
		Columns: Columns,
		Records: []Record{
			testRecord("A", 2022, "Technology", "Europe", 70),
			testRecord("B", 2023, "Energy", "North America", 45),
			testRecord("C", 2024, "Technology", "Asia Pacific", 55),
			testRecord("D", 2024, "Healthcare", "Europe", 62),
		},
	}
}

func TestNewFilterPassesEverything(t *testing.T) {
	ds := filterFixture()
	f := NewFilter(ds)
	assert.True(t, f.IsNoop(ds))
	assert.Equal(t, 2022, f.YearMin)
	assert.Equal(t, 2024, f.YearMax)
	assert.Equal(t, AllValues, f.Region)
	assert.Equal(t, AllValues, f.Industry)
}

func TestFilterYearRange(t *testing.T) {
	ds := filterFixture()
	f := NewFilter(ds)
	f.YearMin = 2023
	f.YearMax = 2023

	out := f.Apply(ds)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "B", out.Records[0].Company)
}

func TestFilterRegionAndIndustry(t *testing.T) {
	ds := filterFixture()
	f := NewFilter(ds)
	f.Region = "Europe"

	out := f.Apply(ds)
	require.Equal(t, 2, out.Len())

	f.Industry = "Technology"
	out = f.Apply(ds)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, "A", out.Records[0].Company)
}

func TestFilterMinESG(t *testing.T) {
	ds := filterFixture()
	f := NewFilter(ds)
	f.MinESG = 60

	out := f.Apply(ds)
	require.Equal(t, 2, out.Len())
	for _, r := range out.Records {
		assert.GreaterOrEqual(t, r.ESGOverall, 60.0)
	}
}

func TestFilterExcludesOutliers(t *testing.T) {
	ds := &Dataset{Columns: Columns}
	for i := 0; i < 19; i++ {
		ds.Records = append(ds.Records, testRecord("A", 2024, "Technology", "Europe", 60))
	}
	ds.Records = append(ds.Records, testRecord("Z", 2024, "Technology", "Europe", 1000))

	f := NewFilter(ds)
	f.IncludeOutliers = false

	out := f.Apply(ds)
	require.Equal(t, 19, out.Len())
	for _, r := range out.Records {
		assert.NotEqual(t, "Z", r.Company)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	ds := filterFixture()
	before := ds.Len()

	f := NewFilter(ds)
	f.Region = "Europe"
	f.Apply(ds)

	assert.Equal(t, before, ds.Len())
	assert.False(t, f.IsNoop(ds))
}
