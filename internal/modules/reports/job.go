package reports

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aristath/esglens/internal/modules/accuracy"
	"github.com/aristath/esglens/internal/modules/dataset"
)

// RescoreJob re-evaluates the configured dataset on a schedule and stores
// the resulting scorecard. Reloading from the source CSV picks up in-place
// dataset updates between runs.
type RescoreJob struct {
	loader      *dataset.Loader
	engine      *accuracy.Engine
	repo        *Repository
	datasetPath string
	log         zerolog.Logger
}

// NewRescoreJob creates a new rescore job
func NewRescoreJob(
	loader *dataset.Loader,
	engine *accuracy.Engine,
	repo *Repository,
	datasetPath string,
	log zerolog.Logger,
) *RescoreJob {
	return &RescoreJob{
		loader:      loader,
		engine:      engine,
		repo:        repo,
		datasetPath: datasetPath,
		log:         log.With().Str("job", "rescore").Logger(),
	}
}

// Name returns the job name for scheduler logging
func (j *RescoreJob) Name() string {
	return "rescore"
}

// Run reloads the dataset, evaluates it, and stores the scorecard.
// An unchanged dataset that already has a stored scorecard is skipped.
func (j *RescoreJob) Run() error {
	ds, err := j.loader.LoadCSV(j.datasetPath)
	if err != nil {
		return fmt.Errorf("rescore failed to load dataset: %w", err)
	}

	existing, err := j.repo.Latest(ds.Fingerprint())
	if err != nil {
		return fmt.Errorf("rescore failed to check cache: %w", err)
	}
	if existing != nil {
		j.log.Debug().Str("fingerprint", ds.Fingerprint()).Msg("Dataset unchanged, skipping rescore")
		return nil
	}

	card, err := j.engine.Evaluate(ds)
	if err != nil {
		return fmt.Errorf("rescore evaluation failed: %w", err)
	}

	if err := j.repo.Save(card); err != nil {
		return fmt.Errorf("rescore failed to store scorecard: %w", err)
	}

	j.log.Info().
		Float64("total_score", card.TotalScore).
		Str("grade", card.Grade).
		Msg("Scheduled rescore completed")

	return nil
}
