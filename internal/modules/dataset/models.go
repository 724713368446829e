// Package dataset provides the ESG company-year dataset model, CSV loading
// with schema validation, filtering, summaries and persistence.
package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Required columns in canonical order. This is the schema contract of the
// engine: loading fails if any of these is absent from the source header.
var Columns = []string{
	"Company",
	"Year",
	"Industry",
	"Region",
	"Revenue",
	"MarketCap",
	"ProfitMargin",
	"CarbonEmissions",
	"EnergyConsumption",
	"WaterUsage",
	"GrowthRate",
	"ESG_Overall",
	"ESG_Environmental",
	"ESG_Social",
	"ESG_Governance",
}

// Record is a single company-year observation
type Record struct {
	Company           string
	Year              int
	Industry          string
	Region            string
	Revenue           float64
	MarketCap         float64
	ProfitMargin      float64
	CarbonEmissions   float64
	EnergyConsumption float64
	WaterUsage        float64
	GrowthRate        *float64 // optional, nil when missing in the source
	ESGOverall        float64
	ESGEnvironmental  float64
	ESGSocial         float64
	ESGGovernance     float64

	// missing holds source column names that were blank for this record.
	// Used for completeness scoring; numeric fields for missing cells hold 0.
	missing map[string]struct{}
}

// MarkMissing records that the given source column was blank for this record
func (r *Record) MarkMissing(column string) {
	if r.missing == nil {
		r.missing = make(map[string]struct{})
	}
	r.missing[column] = struct{}{}
}

// IsMissing reports whether the given source column was blank for this record
func (r *Record) IsMissing(column string) bool {
	_, ok := r.missing[column]
	return ok
}

// MissingCount returns the number of blank source cells for this record
func (r *Record) MissingCount() int {
	return len(r.missing)
}

// Value returns the numeric value of a column for this record.
// Missing cells are returned as NaN. Non-numeric columns return an error.
func (r *Record) Value(column string) (float64, error) {
	if r.IsMissing(column) {
		return math.NaN(), nil
	}
	switch column {
	case "Year":
		return float64(r.Year), nil
	case "Revenue":
		return r.Revenue, nil
	case "MarketCap":
		return r.MarketCap, nil
	case "ProfitMargin":
		return r.ProfitMargin, nil
	case "CarbonEmissions":
		return r.CarbonEmissions, nil
	case "EnergyConsumption":
		return r.EnergyConsumption, nil
	case "WaterUsage":
		return r.WaterUsage, nil
	case "GrowthRate":
		if r.GrowthRate == nil {
			return math.NaN(), nil
		}
		return *r.GrowthRate, nil
	case "ESG_Overall":
		return r.ESGOverall, nil
	case "ESG_Environmental":
		return r.ESGEnvironmental, nil
	case "ESG_Social":
		return r.ESGSocial, nil
	case "ESG_Governance":
		return r.ESGGovernance, nil
	}
	return 0, fmt.Errorf("column %q is not numeric", column)
}

// Dataset is an ordered collection of records sharing one column schema
type Dataset struct {
	Records []Record
	Columns []string
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.Records)
}

// YearRange returns the reporting horizon [min, max].
// Both are 0 for an empty dataset.
func (d *Dataset) YearRange() (int, int) {
	if len(d.Records) == 0 {
		return 0, 0
	}
	min, max := d.Records[0].Year, d.Records[0].Year
	for _, r := range d.Records[1:] {
		if r.Year < min {
			min = r.Year
		}
		if r.Year > max {
			max = r.Year
		}
	}
	return min, max
}

// Companies returns distinct company names in first-appearance order
func (d *Dataset) Companies() []string {
	return d.distinct(func(r Record) string { return r.Company })
}

// Regions returns distinct regions in first-appearance order
func (d *Dataset) Regions() []string {
	return d.distinct(func(r Record) string { return r.Region })
}

// Industries returns distinct industries in first-appearance order
func (d *Dataset) Industries() []string {
	return d.distinct(func(r Record) string { return r.Industry })
}

func (d *Dataset) distinct(key func(Record) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range d.Records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// MissingCells returns the total number of blank cells across all records
func (d *Dataset) MissingCells() int {
	total := 0
	for i := range d.Records {
		total += d.Records[i].MissingCount()
	}
	return total
}

// Column returns the numeric values of a column across all records,
// skipping records where the cell is missing.
func (d *Dataset) Column(name string) []float64 {
	out := make([]float64, 0, len(d.Records))
	for i := range d.Records {
		v, err := d.Records[i].Value(name)
		if err != nil {
			return nil
		}
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// PairedColumns returns the values of two columns restricted to records
// where both cells are present, preserving record order. Pairwise deletion
// keeps per-pair correlations independent of unrelated gaps.
func (d *Dataset) PairedColumns(x, y string) ([]float64, []float64) {
	xs := make([]float64, 0, len(d.Records))
	ys := make([]float64, 0, len(d.Records))
	for i := range d.Records {
		xv, xerr := d.Records[i].Value(x)
		yv, yerr := d.Records[i].Value(y)
		if xerr != nil || yerr != nil {
			return nil, nil
		}
		if math.IsNaN(xv) || math.IsNaN(yv) {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}
	return xs, ys
}

// Fingerprint returns a stable hex digest of the dataset contents.
// Used as the cache key for stored scorecards.
func (d *Dataset) Fingerprint() string {
	h := sha256.New()
	for i := range d.Records {
		r := &d.Records[i]
		growth := ""
		if r.GrowthRate != nil {
			growth = strconv.FormatFloat(*r.GrowthRate, 'g', -1, 64)
		}
		fields := []string{
			r.Company,
			strconv.Itoa(r.Year),
			r.Industry,
			r.Region,
			strconv.FormatFloat(r.Revenue, 'g', -1, 64),
			strconv.FormatFloat(r.MarketCap, 'g', -1, 64),
			strconv.FormatFloat(r.ProfitMargin, 'g', -1, 64),
			strconv.FormatFloat(r.CarbonEmissions, 'g', -1, 64),
			strconv.FormatFloat(r.EnergyConsumption, 'g', -1, 64),
			strconv.FormatFloat(r.WaterUsage, 'g', -1, 64),
			growth,
			strconv.FormatFloat(r.ESGOverall, 'g', -1, 64),
			strconv.FormatFloat(r.ESGEnvironmental, 'g', -1, 64),
			strconv.FormatFloat(r.ESGSocial, 'g', -1, 64),
			strconv.FormatFloat(r.ESGGovernance, 'g', -1, 64),
		}
		h.Write([]byte(strings.Join(fields, "\x1f")))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
