package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueMissingCellIsNaN(t *testing.T) {
	r := testRecord("A", 2024, "Technology", "Europe", 60)
	r.MarkMissing("Revenue")

	v, err := r.Value("Revenue")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	v, err = r.Value("ESG_Overall")
	require.NoError(t, err)
	assert.Equal(t, 60.0, v)
}

func TestValueRejectsNonNumericColumn(t *testing.T) {
	r := testRecord("A", 2024, "Technology", "Europe", 60)
	_, err := r.Value("Company")
	assert.Error(t, err)
}

func TestPairedColumnsPairwiseDeletion(t *testing.T) {
	ds := &Dataset{Columns: Columns}

	a := testRecord("A", 2024, "Technology", "Europe", 60)
	b := testRecord("B", 2024, "Technology", "Europe", 70)
	b.GrowthRate = nil
	b.MarkMissing("GrowthRate")
	c := testRecord("C", 2024, "Technology", "Europe", 80)
	ds.Records = []Record{a, b, c}

	xs, ys := ds.PairedColumns("GrowthRate", "ESG_Overall")
	require.Len(t, xs, 2)
	require.Len(t, ys, 2)
	// The record with the gap drops from both sides; others keep order
	assert.Equal(t, []float64{60, 80}, ys)

	// A column pair without gaps keeps every record
	xs, _ = ds.PairedColumns("MarketCap", "ESG_Overall")
	assert.Len(t, xs, 3)
}

func TestDistinctFirstAppearanceOrder(t *testing.T) {
	ds := &Dataset{Columns: Columns, Records: []Record{
		testRecord("B", 2024, "Energy", "Asia Pacific", 50),
		testRecord("A", 2024, "Technology", "Europe", 60),
		testRecord("B", 2023, "Energy", "Asia Pacific", 52),
	}}

	assert.Equal(t, []string{"B", "A"}, ds.Companies())
	assert.Equal(t, []string{"Energy", "Technology"}, ds.Industries())
	assert.Equal(t, []string{"Asia Pacific", "Europe"}, ds.Regions())
}

func TestFingerprintIsStableAndSensitive(t *testing.T) {
	ds := filterFixture()
	assert.Equal(t, ds.Fingerprint(), ds.Fingerprint())

	other := filterFixture()
	assert.Equal(t, ds.Fingerprint(), other.Fingerprint())

	other.Records[0].Revenue += 1
	assert.NotEqual(t, ds.Fingerprint(), other.Fingerprint())

	// A missing growth rate fingerprints differently from a zero one
	withZero := filterFixture()
	zero := 0.0
	withZero.Records[0].GrowthRate = &zero
	withNil := filterFixture()
	withNil.Records[0].GrowthRate = nil
	assert.NotEqual(t, withZero.Fingerprint(), withNil.Fingerprint())
}

func TestMissingCells(t *testing.T) {
	ds := filterFixture()
	assert.Equal(t, 0, ds.MissingCells())

	ds.Records[0].MarkMissing("Revenue")
	ds.Records[2].MarkMissing("GrowthRate")
	assert.Equal(t, 2, ds.MissingCells())
}
