// Package accuracy implements the ESG dataset accuracy scoring engine:
// per-metric accuracy against fixed reference targets, six weighted
// component scores, and a threshold-graded scorecard.
package accuracy

import "math"

// Accuracy returns a bounded percentage expressing how close actual is to
// target, scaled by relative error and floored at 0. A zero target means no
// meaningful deviation is possible and scores 100.
//
// The tolerance argument is carried through from the reference target
// tables for call-site documentation; it does not affect the result here.
// See ScaledAccuracy and Config.ScaleByTolerance for the interpretation
// that applies it.
func Accuracy(actual, target, tolerance float64) float64 {
	_ = tolerance
	if target == 0 {
		return 100.0
	}
	return math.Max(0, 100-math.Abs(actual-target)/math.Abs(target)*100)
}

// ScaledAccuracy divides the relative-error percentage by tolerance before
// clamping, so a larger tolerance is more forgiving. Tolerances of 1 or
// below reduce to the plain Accuracy formula or stricter.
func ScaledAccuracy(actual, target, tolerance float64) float64 {
	if target == 0 {
		return 100.0
	}
	if tolerance <= 0 {
		tolerance = 1
	}
	relErrPct := math.Abs(actual-target) / math.Abs(target) * 100
	return math.Max(0, math.Min(100, 100-relErrPct/tolerance))
}

// accuracy picks the configured accuracy interpretation
func (c Config) accuracy(actual, target, tolerance float64) float64 {
	if c.ScaleByTolerance {
		return ScaledAccuracy(actual, target, tolerance)
	}
	return Accuracy(actual, target, tolerance)
}

// MetricGrade maps a per-metric accuracy percentage to its letter grade
func MetricGrade(accuracy float64) string {
	switch {
	case accuracy >= 95:
		return "A+ EXCELLENT"
	case accuracy >= 90:
		return "A VERY GOOD"
	case accuracy >= 80:
		return "B+ GOOD"
	case accuracy >= 70:
		return "B ACCEPTABLE"
	default:
		return "C NEEDS WORK"
	}
}

// CategoryGrade maps a per-category or market-dynamics accuracy to the
// coarser three-step grade used in those report sections.
func CategoryGrade(accuracy float64) string {
	switch {
	case accuracy >= 80:
		return "A GOOD"
	case accuracy >= 70:
		return "B ACCEPTABLE"
	default:
		return "C NEEDS WORK"
	}
}

// OverallGrade maps the final weighted score to the overall quality grade
// and its assessment description.
func OverallGrade(totalScore float64) (string, string) {
	switch {
	case totalScore >= 95:
		return "A+ INVESTMENT GRADE", "Suitable for professional investment analysis"
	case totalScore >= 90:
		return "A PROFESSIONAL GRADE", "High-quality business intelligence ready"
	case totalScore >= 80:
		return "B+ BUSINESS GRADE", "Good for business analysis and reporting"
	case totalScore >= 70:
		return "B DEVELOPMENT GRADE", "Suitable for development and testing"
	default:
		return "C PROTOTYPE GRADE", "Requires significant improvements"
	}
}
