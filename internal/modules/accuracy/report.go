package accuracy

import (
	"fmt"
	"strings"
)

const reportWidth = 90

// Render produces the fixed-width text form of a scorecard, section by
// section: dataset summary, the six components with their metric tables,
// and the final weighted scorecard.
func Render(card *Scorecard) string {
	var b strings.Builder

	rule := strings.Repeat("=", reportWidth)
	thin := strings.Repeat("-", reportWidth)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "COMPREHENSIVE ESG DASHBOARD ACCURACY REPORT")
	fmt.Fprintln(&b, rule)

	s := card.Summary
	fmt.Fprintf(&b, "Dataset: %d records, %d columns\n", s.Records, s.Columns)
	fmt.Fprintf(&b, "Time Period: %d-%d\n", s.YearMin, s.YearMax)
	fmt.Fprintf(&b, "Companies: %d\n", s.Companies)
	fmt.Fprintf(&b, "Regions: %s\n", strings.Join(s.Regions, ", "))
	fmt.Fprintf(&b, "Industries: %s\n", strings.Join(s.Industries, ", "))

	renderCorrelations(&b, card, rule, thin)
	renderCategories(&b, card, ComponentIndustry, "2. INDUSTRY PATTERN ACCURACY", "Industry", rule, thin)
	renderCategories(&b, card, ComponentRegion, "3. REGIONAL VARIATION ACCURACY", "Region", rule, thin)
	renderMarket(&b, card, rule, thin)
	renderScoreSection(&b, card, ComponentDataQuality, "5. DATA QUALITY ACCURACY", "Data Quality Metric", "DATA QUALITY SCORE", rule, thin)
	renderScoreSection(&b, card, ComponentFunctionality, "6. CHART FUNCTIONALITY ACCURACY", "Chart Feature", "CHART FUNCTIONALITY SCORE", rule, thin)
	renderScorecard(&b, card, rule, thin)

	return b.String()
}

func sectionHeader(b *strings.Builder, rule, title string, weight float64) {
	fmt.Fprintln(b)
	fmt.Fprintln(b, rule)
	fmt.Fprintf(b, "%s (Weight: %.0f%%)\n", title, weight*100)
	fmt.Fprintln(b, rule)
}

func renderCorrelations(b *strings.Builder, card *Scorecard, rule, thin string) {
	c := card.Component(ComponentCorrelations)
	if c == nil {
		return
	}
	sectionHeader(b, rule, "1. CRITICAL CORRELATIONS ACCURACY", c.Weight)

	fmt.Fprintf(b, "%-40s %-8s %-8s %-10s %-12s\n", "Correlation Relationship", "Target", "Actual", "Accuracy", "Grade")
	fmt.Fprintln(b, thin)
	for _, m := range c.Metrics {
		fmt.Fprintf(b, "%-40s %-8.3f %-8.3f %-9.1f%% %-12s\n", m.Name, m.Target, m.Actual, m.Accuracy, m.Grade)
	}
	fmt.Fprintln(b, thin)
	fmt.Fprintf(b, "CORRELATION COMPONENT SCORE: %.1f%%\n", c.Score)
}

func renderCategories(b *strings.Builder, card *Scorecard, component, title, label string, rule, thin string) {
	c := card.Component(component)
	if c == nil {
		return
	}
	sectionHeader(b, rule, title, c.Weight)

	fmt.Fprintf(b, "%-20s %-10s %-10s %-10s %-12s\n", label, "Avg ESG", "Expected", "Accuracy", "Grade")
	fmt.Fprintln(b, thin)
	for _, m := range c.Metrics {
		fmt.Fprintf(b, "%-20s %-10.1f %-10.1f %-9.1f%% %-12s\n", m.Name, m.Actual, m.Target, m.Accuracy, m.Grade)
	}
	fmt.Fprintln(b, thin)
	fmt.Fprintf(b, "%s COMPONENT SCORE: %.1f%%\n", strings.ToUpper(label), c.Score)
}

func renderMarket(b *strings.Builder, card *Scorecard, rule, thin string) {
	c := card.Component(ComponentMarket)
	if c == nil {
		return
	}
	sectionHeader(b, rule, "4. MARKET DYNAMICS ACCURACY", c.Weight)

	if len(c.Metrics) == 0 {
		fmt.Fprintln(b, "Unable to calculate market dynamics - insufficient data")
	} else {
		fmt.Fprintf(b, "%-30s %-10s %-10s %-10s %-12s\n", "Market Dynamic", "Target", "Actual", "Accuracy", "Grade")
		fmt.Fprintln(b, thin)
		for _, m := range c.Metrics {
			fmt.Fprintf(b, "%-30s %-9.1f%% %-9.1f%% %-9.1f%% %-12s\n", m.Name, m.Target, m.Actual, m.Accuracy, m.Grade)
		}
	}
	fmt.Fprintln(b, thin)
	fmt.Fprintf(b, "MARKET DYNAMICS SCORE: %.1f%%\n", c.Score)
}

func renderScoreSection(b *strings.Builder, card *Scorecard, component, title, label, footer string, rule, thin string) {
	c := card.Component(component)
	if c == nil {
		return
	}
	sectionHeader(b, rule, title, c.Weight)

	fmt.Fprintf(b, "%-30s %-10s %-12s\n", label, "Score", "Grade")
	fmt.Fprintln(b, thin)
	for _, m := range c.Metrics {
		fmt.Fprintf(b, "%-30s %-9.1f%% %-12s\n", m.Name, m.Accuracy, m.Grade)
	}
	fmt.Fprintln(b, thin)
	fmt.Fprintf(b, "%s: %.1f%%\n", footer, c.Score)
}

func renderScorecard(b *strings.Builder, card *Scorecard, rule, thin string) {
	fmt.Fprintln(b)
	fmt.Fprintln(b, rule)
	fmt.Fprintln(b, "COMPREHENSIVE DASHBOARD SCORECARD")
	fmt.Fprintln(b, rule)

	fmt.Fprintf(b, "%-25s %-8s %-8s %-12s %-15s\n", "Component", "Score", "Weight", "Contribution", "Grade")
	fmt.Fprintln(b, thin)
	for _, c := range card.Components {
		fmt.Fprintf(b, "%-25s %6.1f%% %6.0f%% %11.1f %-15s\n", c.Name, c.Score, c.Weight*100, c.Contribution, c.Grade)
	}

	fmt.Fprintln(b, rule)
	fmt.Fprintf(b, "FINAL DASHBOARD ACCURACY: %.1f%%\n", card.TotalScore)
	fmt.Fprintf(b, "OVERALL QUALITY GRADE: %s\n", card.Grade)
	fmt.Fprintf(b, "ASSESSMENT: %s\n", card.Description)
	fmt.Fprintln(b, rule)
}
