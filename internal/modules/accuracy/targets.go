package accuracy

import (
	"fmt"
	"math"
)

// BucketLevel classifies a category into an expected-ESG tier
type BucketLevel string

const (
	HighExpected   BucketLevel = "High ESG"
	MediumExpected BucketLevel = "Medium ESG"
	LowExpected    BucketLevel = "Lower ESG"
)

// CategoryBucket pairs a tier with its expected mean ESG score
type CategoryBucket struct {
	Level    BucketLevel
	Expected float64
}

// CategoryTable maps category values (industries or regions) to expected
// ESG buckets. Categories absent from the table fall into Default; that is
// the intended medium tier, not an error.
type CategoryTable struct {
	Dimension string // "Industry" or "Region"
	Title     string // report section title
	Buckets   map[string]CategoryBucket
	Default   CategoryBucket
	Tolerance float64
}

// Lookup returns the bucket for a category value
func (t CategoryTable) Lookup(category string) CategoryBucket {
	if b, ok := t.Buckets[category]; ok {
		return b
	}
	return t.Default
}

// CorrelationTarget names a variable pair and the market-reference
// correlation its Pearson coefficient is scored against.
type CorrelationTarget struct {
	Name   string
	X, Y   string  // dataset column names
	Target float64 // reference correlation in [-1, 1]
	// Optional pairs are skipped entirely when no record has both cells,
	// instead of scoring a vacuous zero correlation.
	Optional bool
}

// Weights holds the six component weights. They must sum to 1.0.
type Weights struct {
	Correlation   float64
	Industry      float64
	Region        float64
	Market        float64
	DataQuality   float64
	Functionality float64
}

// Sum returns the total of all six weights
func (w Weights) Sum() float64 {
	return w.Correlation + w.Industry + w.Region + w.Market + w.DataQuality + w.Functionality
}

// Config is the process-wide immutable scoring configuration: reference
// targets, category tables, market-dynamics targets and component weights.
// Build it once with DefaultConfig; the engine never mutates it.
type Config struct {
	Correlations []CorrelationTarget
	Industry     CategoryTable
	Region       CategoryTable

	// Market dynamics quintile split and targets
	TopQuantile         float64
	BottomQuantile      float64
	PremiumTarget       float64
	PremiumTolerance    float64
	SizeEffectTarget    float64
	SizeEffectTolerance float64

	// Static feature-completeness scores
	StaticFeatures []StaticFeature

	Weights Weights

	// ScaleByTolerance switches the accuracy function to divide the
	// relative-error percentage by each target's tolerance before
	// clamping. Off by default: the plain formula carries tolerances
	// through the call sites without applying them.
	ScaleByTolerance bool

	// Tolerance passed at correlation call sites (reference default)
	CorrelationTolerance float64
}

// StaticFeature is a checked-box feature completeness entry
type StaticFeature struct {
	Name  string
	Score float64
}

// DefaultConfig returns the reference scoring configuration
func DefaultConfig() Config {
	return Config{
		Correlations: []CorrelationTarget{
			{Name: "Revenue <-> ESG Overall", X: "Revenue", Y: "ESG_Overall", Target: 0.250},
			{Name: "MarketCap <-> ESG Overall", X: "MarketCap", Y: "ESG_Overall", Target: 0.350},
			{Name: "Carbon <-> Environmental ESG", X: "CarbonEmissions", Y: "ESG_Environmental", Target: -0.650},
			{Name: "Energy <-> Environmental ESG", X: "EnergyConsumption", Y: "ESG_Environmental", Target: -0.500},
			{Name: "Water <-> Environmental ESG", X: "WaterUsage", Y: "ESG_Environmental", Target: -0.450},
			{Name: "ESG Environmental <-> Social", X: "ESG_Environmental", Y: "ESG_Social", Target: 0.150},
			{Name: "ESG Governance <-> MarketCap", X: "ESG_Governance", Y: "MarketCap", Target: 0.200},
			{Name: "ESG Governance <-> Revenue", X: "ESG_Governance", Y: "Revenue", Target: 0.180},
			{Name: "Growth <-> Energy Consumption", X: "GrowthRate", Y: "EnergyConsumption", Target: 0.300, Optional: true},
		},
		Industry: CategoryTable{
			Dimension: "Industry",
			Title:     "INDUSTRY PATTERN ACCURACY",
			Buckets: map[string]CategoryBucket{
				"Technology":    {Level: HighExpected, Expected: 65},
				"Healthcare":    {Level: HighExpected, Expected: 65},
				"Finance":       {Level: HighExpected, Expected: 65},
				"Energy":        {Level: LowExpected, Expected: 45},
				"Materials":     {Level: LowExpected, Expected: 45},
				"Manufacturing": {Level: LowExpected, Expected: 45},
			},
			Default:   CategoryBucket{Level: MediumExpected, Expected: 55},
			Tolerance: 15,
		},
		Region: CategoryTable{
			Dimension: "Region",
			Title:     "REGIONAL VARIATION ACCURACY",
			Buckets: map[string]CategoryBucket{
				"Europe":        {Level: HighExpected, Expected: 60},
				"North America": {Level: HighExpected, Expected: 60},
				"Asia Pacific":  {Level: MediumExpected, Expected: 55},
			},
			Default:   CategoryBucket{Level: LowExpected, Expected: 50},
			Tolerance: 12,
		},
		TopQuantile:         0.8,
		BottomQuantile:      0.2,
		PremiumTarget:       35, // percent market-cap multiple premium for top ESG companies
		PremiumTolerance:    10,
		SizeEffectTarget:    25, // percent larger revenue for top ESG companies
		SizeEffectTolerance: 15,
		StaticFeatures: []StaticFeature{
			{Name: "Interactive Chart Selection", Score: 100},
			{Name: "Charting Integration", Score: 100},
			{Name: "Trendline Support", Score: 100},
			{Name: "Filter Responsiveness", Score: 100},
			{Name: "Error Handling", Score: 100},
		},
		Weights: Weights{
			Correlation:   0.30,
			Industry:      0.25,
			Region:        0.20,
			Market:        0.15,
			DataQuality:   0.05,
			Functionality: 0.05,
		},
		CorrelationTolerance: 0.1,
	}
}

// Validate checks the configuration invariants
func (c Config) Validate() error {
	if math.Abs(c.Weights.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("component weights must sum to 1.0, got %v", c.Weights.Sum())
	}
	if len(c.Correlations) == 0 {
		return fmt.Errorf("no correlation targets configured")
	}
	for _, t := range c.Correlations {
		if t.Target < -1 || t.Target > 1 {
			return fmt.Errorf("correlation target %q out of range: %v", t.Name, t.Target)
		}
	}
	if c.TopQuantile <= c.BottomQuantile {
		return fmt.Errorf("top quantile %v must exceed bottom quantile %v", c.TopQuantile, c.BottomQuantile)
	}
	return nil
}
