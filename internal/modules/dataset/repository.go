package dataset

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Repository persists ingested datasets to SQLite so the service does not
// re-parse the source CSV on every start.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new dataset repository and ensures its schema
func NewRepository(db *sql.DB, log zerolog.Logger) (*Repository, error) {
	r := &Repository{
		db:  db,
		log: log.With().Str("repo", "dataset").Logger(),
	}
	if err := r.createSchema(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Repository) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS datasets (
		name        TEXT PRIMARY KEY,
		fingerprint TEXT NOT NULL,
		created_at  TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS dataset_records (
		dataset_name       TEXT NOT NULL REFERENCES datasets(name) ON DELETE CASCADE,
		position           INTEGER NOT NULL,
		company            TEXT NOT NULL,
		year               INTEGER NOT NULL,
		industry           TEXT NOT NULL,
		region             TEXT NOT NULL,
		revenue            REAL NOT NULL,
		market_cap         REAL NOT NULL,
		profit_margin      REAL NOT NULL,
		carbon_emissions   REAL NOT NULL,
		energy_consumption REAL NOT NULL,
		water_usage        REAL NOT NULL,
		growth_rate        REAL,
		esg_overall        REAL NOT NULL,
		esg_environmental  REAL NOT NULL,
		esg_social         REAL NOT NULL,
		esg_governance     REAL NOT NULL,
		missing_columns    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (dataset_name, position)
	);`

	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create dataset schema: %w", err)
	}
	return nil
}

// Save stores a dataset under the given name, replacing any previous
// dataset with that name.
func (r *Repository) Save(name string, ds *Dataset) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin dataset save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM dataset_records WHERE dataset_name = ?", name); err != nil {
		return fmt.Errorf("failed to clear dataset records: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM datasets WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to clear dataset: %w", err)
	}

	if _, err := tx.Exec(
		"INSERT INTO datasets (name, fingerprint, created_at) VALUES (?, ?, ?)",
		name, ds.Fingerprint(), time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("failed to insert dataset: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO dataset_records (
			dataset_name, position, company, year, industry, region,
			revenue, market_cap, profit_margin, carbon_emissions,
			energy_consumption, water_usage, growth_rate,
			esg_overall, esg_environmental, esg_social, esg_governance,
			missing_columns
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare record insert: %w", err)
	}
	defer stmt.Close()

	for i := range ds.Records {
		rec := &ds.Records[i]

		var growth sql.NullFloat64
		if rec.GrowthRate != nil {
			growth = sql.NullFloat64{Float64: *rec.GrowthRate, Valid: true}
		}

		if _, err := stmt.Exec(
			name, i, rec.Company, rec.Year, rec.Industry, rec.Region,
			rec.Revenue, rec.MarketCap, rec.ProfitMargin, rec.CarbonEmissions,
			rec.EnergyConsumption, rec.WaterUsage, growth,
			rec.ESGOverall, rec.ESGEnvironmental, rec.ESGSocial, rec.ESGGovernance,
			missingColumnsString(rec),
		); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset save: %w", err)
	}

	r.log.Info().Str("name", name).Int("records", ds.Len()).Msg("Dataset saved")
	return nil
}

// Load returns the dataset stored under the given name, or nil when no
// dataset with that name exists.
func (r *Repository) Load(name string) (*Dataset, error) {
	var fingerprint string
	err := r.db.QueryRow("SELECT fingerprint FROM datasets WHERE name = ?", name).Scan(&fingerprint)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset %q: %w", name, err)
	}

	rows, err := r.db.Query(`
		SELECT company, year, industry, region,
		       revenue, market_cap, profit_margin, carbon_emissions,
		       energy_consumption, water_usage, growth_rate,
		       esg_overall, esg_environmental, esg_social, esg_governance,
		       missing_columns
		FROM dataset_records
		WHERE dataset_name = ?
		ORDER BY position`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset records: %w", err)
	}
	defer rows.Close()

	ds := &Dataset{Columns: append([]string(nil), Columns...)}
	for rows.Next() {
		var rec Record
		var growth sql.NullFloat64
		var missing string
		if err := rows.Scan(
			&rec.Company, &rec.Year, &rec.Industry, &rec.Region,
			&rec.Revenue, &rec.MarketCap, &rec.ProfitMargin, &rec.CarbonEmissions,
			&rec.EnergyConsumption, &rec.WaterUsage, &growth,
			&rec.ESGOverall, &rec.ESGEnvironmental, &rec.ESGSocial, &rec.ESGGovernance,
			&missing,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dataset record: %w", err)
		}
		if growth.Valid {
			v := growth.Float64
			rec.GrowthRate = &v
		}
		for _, col := range strings.Split(missing, ",") {
			if col != "" {
				rec.MarkMissing(col)
			}
		}
		ds.Records = append(ds.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dataset records: %w", err)
	}

	return ds, nil
}

// List returns the names of all stored datasets
func (r *Repository) List() ([]string, error) {
	rows, err := r.db.Query("SELECT name FROM datasets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan dataset name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes a stored dataset and its records
func (r *Repository) Delete(name string) error {
	if _, err := r.db.Exec("DELETE FROM dataset_records WHERE dataset_name = ?", name); err != nil {
		return fmt.Errorf("failed to delete dataset records: %w", err)
	}
	if _, err := r.db.Exec("DELETE FROM datasets WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	return nil
}

func missingColumnsString(rec *Record) string {
	if len(rec.missing) == 0 {
		return ""
	}
	cols := make([]string, 0, len(rec.missing))
	for _, col := range Columns {
		if rec.IsMissing(col) {
			cols = append(cols, col)
		}
	}
	return strings.Join(cols, ",")
}
