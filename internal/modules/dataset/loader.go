package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ErrDatasetNotFound indicates the source CSV file does not exist
var ErrDatasetNotFound = errors.New("dataset file not found")

// MissingColumnError indicates a required column is absent from the source
// header. The schema is validated up front so downstream computations never
// see a partial dataset.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset is missing required column %q", e.Column)
}

// Loader reads and validates ESG datasets from CSV files
type Loader struct {
	log zerolog.Logger
}

// NewLoader creates a new dataset loader
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{
		log: log.With().Str("component", "dataset_loader").Logger(),
	}
}

// LoadCSV reads a dataset from the given CSV file path.
// Returns ErrDatasetNotFound when the file does not exist and a
// *MissingColumnError when a required column is absent from the header.
func (l *Loader) LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	ds, err := l.Read(f)
	if err != nil {
		return nil, err
	}

	minYear, maxYear := ds.YearRange()
	l.log.Info().
		Int("records", ds.Len()).
		Int("columns", len(ds.Columns)).
		Int("year_min", minYear).
		Int("year_max", maxYear).
		Str("path", path).
		Msg("Dataset loaded")

	return ds, nil
}

// Read parses a dataset from an io.Reader containing CSV data
func (l *Loader) Read(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	// Validate the schema before touching any row
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, &MissingColumnError{Column: col}
		}
	}

	ds := &Dataset{Columns: append([]string(nil), Columns...)}

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row %d: %w", line, err)
		}
		line++

		rec, err := parseRecord(row, index, line)
		if err != nil {
			return nil, err
		}
		ds.Records = append(ds.Records, rec)
	}

	return ds, nil
}

func parseRecord(row []string, index map[string]int, line int) (Record, error) {
	cell := func(col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rec Record
	rec.Company = cell("Company")
	rec.Industry = cell("Industry")
	rec.Region = cell("Region")
	for _, col := range []string{"Company", "Industry", "Region"} {
		if cell(col) == "" {
			rec.MarkMissing(col)
		}
	}

	yearStr := cell("Year")
	if yearStr == "" {
		rec.MarkMissing("Year")
	} else {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return rec, fmt.Errorf("row %d: invalid Year %q: %w", line, yearStr, err)
		}
		rec.Year = year
	}

	numeric := []struct {
		col string
		dst *float64
	}{
		{"Revenue", &rec.Revenue},
		{"MarketCap", &rec.MarketCap},
		{"ProfitMargin", &rec.ProfitMargin},
		{"CarbonEmissions", &rec.CarbonEmissions},
		{"EnergyConsumption", &rec.EnergyConsumption},
		{"WaterUsage", &rec.WaterUsage},
		{"ESG_Overall", &rec.ESGOverall},
		{"ESG_Environmental", &rec.ESGEnvironmental},
		{"ESG_Social", &rec.ESGSocial},
		{"ESG_Governance", &rec.ESGGovernance},
	}
	for _, n := range numeric {
		raw := cell(n.col)
		if raw == "" {
			rec.MarkMissing(n.col)
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rec, fmt.Errorf("row %d: invalid %s %q: %w", line, n.col, raw, err)
		}
		*n.dst = v
	}

	// GrowthRate is optional; a blank cell is expected, not an error
	if raw := cell("GrowthRate"); raw == "" {
		rec.MarkMissing("GrowthRate")
	} else {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return rec, fmt.Errorf("row %d: invalid GrowthRate %q: %w", line, raw, err)
		}
		rec.GrowthRate = &v
	}

	return rec, nil
}
