package migration

import (
	"context"
	"fmt"
	"time"

	"wineapi/internal/database"
	"wineapi/internal/logger"
)

type schemaStep struct {
	Name string
	SQL  string
}

var sentinelQueries = map[database.Dialect]string{
	database.SQLite:   `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'wine_records'`,
	database.Postgres: `SELECT COUNT(*) FROM pg_catalog.pg_tables WHERE schemaname = current_schema() AND tablename = 'wine_records'`,
}

// AUTOINCREMENT / BIGSERIAL guarantee ids are never reused after a delete.
var steps = map[database.Dialect][]schemaStep{
	database.SQLite: {
		{
			Name: "create_table_wine_records",
			SQL: `CREATE TABLE IF NOT EXISTS wine_records (
  id                   INTEGER PRIMARY KEY AUTOINCREMENT,
  name                 TEXT    NOT NULL,
  supplier             TEXT    NOT NULL,
  identity_document    TEXT    NOT NULL,
  fixed_acidity        REAL    NOT NULL,
  volatile_acidity     REAL    NOT NULL,
  citric_acid          REAL    NOT NULL,
  residual_sugar       REAL    NOT NULL,
  chlorides            REAL    NOT NULL,
  free_sulfur_dioxide  REAL    NOT NULL,
  total_sulfur_dioxide REAL    NOT NULL,
  density              REAL    NOT NULL,
  ph                   REAL    NOT NULL,
  sulphates            REAL    NOT NULL,
  alcohol              REAL    NOT NULL,
  classification       TEXT    NOT NULL CHECK (classification IN ('GOOD', 'BAD'))
);`,
		},
	},
	database.Postgres: {
		{
			Name: "create_table_wine_records",
			SQL: `CREATE TABLE IF NOT EXISTS wine_records (
  id                   BIGSERIAL        PRIMARY KEY,
  name                 TEXT             NOT NULL,
  supplier             TEXT             NOT NULL,
  identity_document    TEXT             NOT NULL,
  fixed_acidity        DOUBLE PRECISION NOT NULL,
  volatile_acidity     DOUBLE PRECISION NOT NULL,
  citric_acid          DOUBLE PRECISION NOT NULL,
  residual_sugar       DOUBLE PRECISION NOT NULL,
  chlorides            DOUBLE PRECISION NOT NULL,
  free_sulfur_dioxide  DOUBLE PRECISION NOT NULL,
  total_sulfur_dioxide DOUBLE PRECISION NOT NULL,
  density              DOUBLE PRECISION NOT NULL,
  ph                   DOUBLE PRECISION NOT NULL,
  sulphates            DOUBLE PRECISION NOT NULL,
  alcohol              DOUBLE PRECISION NOT NULL,
  classification       TEXT             NOT NULL CHECK (classification IN ('GOOD', 'BAD'))
);`,
		},
		{
			Name: "create_index_wine_records_classification",
			SQL:  `CREATE INDEX IF NOT EXISTS idx_wine_records_classification ON wine_records (classification);`,
		},
	},
}

// EnsureSchema creates the wine_records table when it does not exist yet.
// Every step is idempotent, so running it on each start is safe.
func EnsureSchema(ctx context.Context, db *database.DB, log *logger.Logger) error {
	start := time.Now()
	log = log.With("component", "database", "dialect", string(db.Dialect))

	sentinel, ok := sentinelQueries[db.Dialect]
	if !ok {
		return fmt.Errorf("no schema for dialect %q", db.Dialect)
	}

	log.Info("db_schema_check", "status", "starting")

	var tables int
	if err := db.QueryRowContext(ctx, sentinel).Scan(&tables); err != nil {
		log.Error("db_schema_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if tables > 0 {
		log.Info("db_schema_skip",
			"status", "success",
			"detail", "schema already exists, skipping",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	for _, step := range steps[db.Dialect] {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_schema_failed",
				"status", "error",
				"schema_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("schema step %s failed: %w", step.Name, err)
		}

		log.Info("db_schema_step",
			"status", "success",
			"schema_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_schema_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
