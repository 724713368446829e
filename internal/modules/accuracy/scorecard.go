package accuracy

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aristath/esglens/internal/modules/dataset"
)

// Engine evaluates datasets against the reference scoring configuration.
// It holds no mutable state; a single engine is safe for concurrent use
// across independent datasets.
type Engine struct {
	cfg Config
	log zerolog.Logger
}

// NewEngine creates a scoring engine after validating the configuration
func NewEngine(cfg Config, log zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring configuration: %w", err)
	}
	return &Engine{
		cfg: cfg,
		log: log.With().Str("component", "accuracy_engine").Logger(),
	}, nil
}

// Config returns the engine's scoring configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Evaluate computes the full scorecard for a dataset: six component scores
// combined by fixed weights into a total score and an overall grade. The
// dataset is never mutated; two evaluations of the same dataset differ
// only in ID and timestamp.
func (e *Engine) Evaluate(ds *dataset.Dataset) (*Scorecard, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset must not be nil")
	}

	weights := e.cfg.Weights
	components := []ComponentScore{
		withWeight(e.scoreCorrelations(ds), weights.Correlation),
		withWeight(e.scoreCategories(ds, e.cfg.Industry, ComponentIndustry), weights.Industry),
		withWeight(e.scoreCategories(ds, e.cfg.Region, ComponentRegion), weights.Region),
		withWeight(e.scoreMarketDynamics(ds), weights.Market),
		withWeight(e.scoreDataQuality(ds), weights.DataQuality),
		withWeight(e.scoreFunctionality(), weights.Functionality),
	}

	// Folding reduction over the weighted components
	total := 0.0
	for _, c := range components {
		total += c.Contribution
	}

	grade, description := OverallGrade(total)

	card := &Scorecard{
		ID:                 uuid.New().String(),
		GeneratedAt:        time.Now().UTC(),
		DatasetFingerprint: ds.Fingerprint(),
		Summary:            dataset.Summarize(ds),
		Components:         components,
		TotalScore:         total,
		Grade:              grade,
		Description:        description,
	}

	e.log.Info().
		Float64("total_score", total).
		Str("grade", grade).
		Int("records", ds.Len()).
		Msg("Scorecard generated")

	return card, nil
}

// withWeight finalizes a component: attaches its weight, contribution and
// component-level grade.
func withWeight(c ComponentScore, weight float64) ComponentScore {
	c.Weight = weight
	c.Contribution = c.Score * weight
	c.Grade = MetricGrade(c.Score)
	return c
}
