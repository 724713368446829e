// Package reports persists generated scorecards so repeated requests for an
// unchanged dataset are served from cache instead of re-running the engine.
package reports

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/aristath/esglens/internal/modules/accuracy"
)

// timeFormat is fixed-width so the generated_at column sorts
// lexicographically in timestamp order.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

// Repository stores msgpack-encoded scorecards keyed by dataset fingerprint
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new scorecard repository and ensures its schema
func NewRepository(db *sql.DB, log zerolog.Logger) (*Repository, error) {
	r := &Repository{
		db:  db,
		log: log.With().Str("repo", "reports").Logger(),
	}
	if err := r.createSchema(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scorecards (
		id           TEXT PRIMARY KEY,
		fingerprint  TEXT NOT NULL,
		generated_at TEXT NOT NULL,
		total_score  REAL NOT NULL,
		grade        TEXT NOT NULL,
		payload      BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_scorecards_fingerprint
		ON scorecards (fingerprint, generated_at DESC);`

	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create scorecards schema: %w", err)
	}
	return nil
}

// Save stores a scorecard
func (r *Repository) Save(card *accuracy.Scorecard) error {
	payload, err := msgpack.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to encode scorecard: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO scorecards (id, fingerprint, generated_at, total_score, grade, payload)
		VALUES (?, ?, ?, ?, ?, ?)`,
		card.ID,
		card.DatasetFingerprint,
		card.GeneratedAt.UTC().Format(timeFormat),
		card.TotalScore,
		card.Grade,
		payload,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scorecard: %w", err)
	}

	r.log.Debug().Str("id", card.ID).Str("grade", card.Grade).Msg("Scorecard stored")
	return nil
}

// Latest returns the most recent scorecard for a dataset fingerprint,
// or nil when none has been stored yet.
func (r *Repository) Latest(fingerprint string) (*accuracy.Scorecard, error) {
	var payload []byte
	err := r.db.QueryRow(`
		SELECT payload FROM scorecards
		WHERE fingerprint = ?
		ORDER BY generated_at DESC
		LIMIT 1`, fingerprint).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest scorecard: %w", err)
	}

	var card accuracy.Scorecard
	if err := msgpack.Unmarshal(payload, &card); err != nil {
		return nil, fmt.Errorf("failed to decode scorecard: %w", err)
	}
	return &card, nil
}

// History returns the most recent scorecards across all datasets,
// newest first.
func (r *Repository) History(limit int) ([]*accuracy.Scorecard, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(`
		SELECT payload FROM scorecards
		ORDER BY generated_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scorecard history: %w", err)
	}
	defer rows.Close()

	var cards []*accuracy.Scorecard
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan scorecard payload: %w", err)
		}
		var card accuracy.Scorecard
		if err := msgpack.Unmarshal(payload, &card); err != nil {
			return nil, fmt.Errorf("failed to decode scorecard: %w", err)
		}
		cards = append(cards, &card)
	}
	return cards, rows.Err()
}

// Prune removes scorecards older than the cutoff, keeping the cache small
func (r *Repository) Prune(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec(
		"DELETE FROM scorecards WHERE generated_at < ?",
		cutoff.UTC().Format(timeFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune scorecards: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
