package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Company,Year,Industry,Region,Revenue,MarketCap,ProfitMargin,CarbonEmissions,EnergyConsumption,WaterUsage,GrowthRate,ESG_Overall,ESG_Environmental,ESG_Social,ESG_Governance
Acme,2023,Technology,Europe,1000,2000,10,500,300,200,5,60,61,62,63
Acme,2024,Technology,Europe,1100,2300,11,490,310,190,,64,63,65,66
Borealis,2023,Energy,North America,5000,4000,8,2500,1200,900,2.5,45,40,48,47
`

func testLoader() *Loader {
	return NewLoader(zerolog.Nop())
}

func TestReadParsesRecords(t *testing.T) {
	ds, err := testLoader().Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())
	assert.Equal(t, Columns, ds.Columns)

	r := ds.Records[0]
	assert.Equal(t, "Acme", r.Company)
	assert.Equal(t, 2023, r.Year)
	assert.Equal(t, "Technology", r.Industry)
	assert.Equal(t, "Europe", r.Region)
	assert.Equal(t, 1000.0, r.Revenue)
	assert.Equal(t, 60.0, r.ESGOverall)
	require.NotNil(t, r.GrowthRate)
	assert.Equal(t, 5.0, *r.GrowthRate)
	assert.Equal(t, 0, r.MissingCount())
}

func TestReadBlankGrowthRateIsMissingNotError(t *testing.T) {
	ds, err := testLoader().Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	r := ds.Records[1]
	assert.Nil(t, r.GrowthRate)
	assert.True(t, r.IsMissing("GrowthRate"))
	assert.Equal(t, 1, r.MissingCount())
}

func TestReadBlankNumericCellIsMissing(t *testing.T) {
	csv := strings.Replace(sampleCSV, "5000,4000", ",4000", 1)
	ds, err := testLoader().Read(strings.NewReader(csv))
	require.NoError(t, err)

	r := ds.Records[2]
	assert.True(t, r.IsMissing("Revenue"))
	assert.Equal(t, 0.0, r.Revenue)

	// Column access skips the blank cell
	assert.Len(t, ds.Column("Revenue"), 2)
}

func TestReadRejectsMissingColumn(t *testing.T) {
	csv := strings.Replace(sampleCSV, ",ESG_Governance", ",Extra", 1)
	_, err := testLoader().Read(strings.NewReader(csv))

	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "ESG_Governance", missing.Column)
}

func TestReadRejectsInvalidNumber(t *testing.T) {
	csv := strings.Replace(sampleCSV, "5000", "not-a-number", 1)
	_, err := testLoader().Read(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Revenue")
}

func TestReadToleratesReorderedHeader(t *testing.T) {
	csv := `Year,Company,Industry,Region,Revenue,MarketCap,ProfitMargin,CarbonEmissions,EnergyConsumption,WaterUsage,GrowthRate,ESG_Overall,ESG_Environmental,ESG_Social,ESG_Governance
2023,Acme,Technology,Europe,1000,2000,10,500,300,200,5,60,61,62,63
`
	ds, err := testLoader().Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Acme", ds.Records[0].Company)
	assert.Equal(t, 2023, ds.Records[0].Year)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := testLoader().LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestLoadCSVFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "esg.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	ds, err := testLoader().LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())

	minYear, maxYear := ds.YearRange()
	assert.Equal(t, 2023, minYear)
	assert.Equal(t, 2024, maxYear)
}

func TestMissingColumnErrorMessage(t *testing.T) {
	err := &MissingColumnError{Column: "Revenue"}
	assert.Contains(t, err.Error(), `"Revenue"`)
}
