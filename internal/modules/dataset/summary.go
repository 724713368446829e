package dataset

import (
	"sort"

	"github.com/aristath/esglens/pkg/formulas"
)

// Summary holds the headline numbers the dashboard shows for a
// (possibly filtered) dataset.
type Summary struct {
	Records    int      `json:"records"`
	Columns    int      `json:"columns"`
	YearMin    int      `json:"year_min"`
	YearMax    int      `json:"year_max"`
	Companies  int      `json:"companies"`
	Regions    []string `json:"regions"`
	Industries []string `json:"industries"`

	AvgESG          float64 `json:"avg_esg"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCarbon     float64 `json:"total_carbon"`
	CarbonIntensity float64 `json:"carbon_intensity"` // emissions per $1K revenue

	// Best year-over-year ESG improvement across industries.
	// Empty industry means there was not enough data to compute it.
	BestGrowthIndustry string  `json:"best_growth_industry,omitempty"`
	BestGrowthChange   float64 `json:"best_growth_change,omitempty"`
}

// Summarize computes the summary of a dataset
func Summarize(ds *Dataset) Summary {
	minYear, maxYear := ds.YearRange()
	s := Summary{
		Records:    ds.Len(),
		Columns:    len(ds.Columns),
		YearMin:    minYear,
		YearMax:    maxYear,
		Companies:  len(ds.Companies()),
		Regions:    ds.Regions(),
		Industries: ds.Industries(),
	}

	s.AvgESG = formulas.Mean(ds.Column("ESG_Overall"))
	for _, v := range ds.Column("Revenue") {
		s.TotalRevenue += v
	}
	for _, v := range ds.Column("CarbonEmissions") {
		s.TotalCarbon += v
	}
	if s.TotalRevenue > 0 {
		s.CarbonIntensity = s.TotalCarbon / (s.TotalRevenue / 1000)
	}

	s.BestGrowthIndustry, s.BestGrowthChange = bestESGGrowth(ds)

	return s
}

// bestESGGrowth finds the industry with the highest average year-over-year
// change of its mean ESG score. Requires at least two reporting years for
// some industry; returns ("", 0) otherwise.
func bestESGGrowth(ds *Dataset) (string, float64) {
	type yearAgg struct {
		sum   float64
		count int
	}

	byIndustry := make(map[string]map[int]*yearAgg)
	for _, r := range ds.Records {
		if r.IsMissing("ESG_Overall") || r.IsMissing("Industry") || r.IsMissing("Year") {
			continue
		}
		years, ok := byIndustry[r.Industry]
		if !ok {
			years = make(map[int]*yearAgg)
			byIndustry[r.Industry] = years
		}
		agg, ok := years[r.Year]
		if !ok {
			agg = &yearAgg{}
			years[r.Year] = agg
		}
		agg.sum += r.ESGOverall
		agg.count++
	}

	best := ""
	bestChange := 0.0
	for _, industry := range ds.Industries() {
		years := byIndustry[industry]
		if len(years) < 2 {
			continue
		}

		sorted := make([]int, 0, len(years))
		for y := range years {
			sorted = append(sorted, y)
		}
		sort.Ints(sorted)

		var deltas []float64
		for i := 1; i < len(sorted); i++ {
			prev := years[sorted[i-1]]
			cur := years[sorted[i]]
			deltas = append(deltas, cur.sum/float64(cur.count)-prev.sum/float64(prev.count))
		}

		change := formulas.Mean(deltas)
		if best == "" || change > bestChange {
			best = industry
			bestChange = change
		}
	}

	return best, bestChange
}
