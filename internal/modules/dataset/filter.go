package dataset

import (
	"github.com/aristath/esglens/pkg/formulas"
)

// AllValues is the selector value that disables a categorical filter
const AllValues = "All"

// Filter narrows a dataset the way the dashboard sidebar does: year range,
// region, industry, minimum ESG score and optional outlier exclusion.
// The zero value of the categorical fields is treated like AllValues.
type Filter struct {
	YearMin         int
	YearMax         int
	Region          string
	Industry        string
	MinESG          float64
	IncludeOutliers bool
}

// NewFilter returns a filter that passes every record of the dataset
func NewFilter(ds *Dataset) Filter {
	minYear, maxYear := ds.YearRange()
	return Filter{
		YearMin:         minYear,
		YearMax:         maxYear,
		Region:          AllValues,
		Industry:        AllValues,
		MinESG:          0,
		IncludeOutliers: true,
	}
}

// Apply returns a new dataset containing only records that pass the filter.
// The input dataset is never mutated.
func (f Filter) Apply(ds *Dataset) *Dataset {
	out := &Dataset{Columns: append([]string(nil), ds.Columns...)}

	var lower, upper float64
	checkOutliers := !f.IncludeOutliers && ds.Len() > 0
	if checkOutliers {
		esg := ds.Column("ESG_Overall")
		q1 := formulas.Quantile(0.25, esg)
		q3 := formulas.Quantile(0.75, esg)
		iqr := q3 - q1
		lower = q1 - 1.5*iqr
		upper = q3 + 1.5*iqr
	}

	for _, r := range ds.Records {
		if f.YearMin != 0 && r.Year < f.YearMin {
			continue
		}
		if f.YearMax != 0 && r.Year > f.YearMax {
			continue
		}
		if f.Region != "" && f.Region != AllValues && r.Region != f.Region {
			continue
		}
		if f.Industry != "" && f.Industry != AllValues && r.Industry != f.Industry {
			continue
		}
		if r.ESGOverall < f.MinESG {
			continue
		}
		if checkOutliers && (r.ESGOverall < lower || r.ESGOverall > upper) {
			continue
		}
		out.Records = append(out.Records, r)
	}

	return out
}

// IsNoop reports whether the filter passes every record of the dataset
func (f Filter) IsNoop(ds *Dataset) bool {
	return f.Apply(ds).Len() == ds.Len()
}
