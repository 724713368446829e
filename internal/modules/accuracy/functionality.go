package accuracy

// scoreFunctionality reports the fixed feature-completeness scores. These
// represent checked-box dashboard capabilities rather than computation and
// exist so the scorecard keeps its uniform six-component structure.
func (e *Engine) scoreFunctionality() ComponentScore {
	metrics := make([]MetricResult, 0, len(e.cfg.StaticFeatures))
	for _, f := range e.cfg.StaticFeatures {
		metrics = append(metrics, MetricResult{
			Name:     f.Name,
			Target:   100,
			Actual:   f.Score,
			Accuracy: f.Score,
			Grade:    qualityGrade(f.Score, 95),
		})
	}

	return ComponentScore{
		Name:    ComponentFunctionality,
		Score:   meanAccuracy(metrics),
		Metrics: metrics,
	}
}
