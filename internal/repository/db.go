package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

type Config struct {
	Path        string
	DialTimeout time.Duration
}

// Open opens the SQLite database with WAL mode enabled and initializes the
// schema.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("opening database", "path", cfg.Path)

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database ready")
	return db, nil
}

// Close closes the database connection gracefully
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
		return
	}
	logger.Info("database closed")
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS segment_job (
	id TEXT PRIMARY KEY,
	source_path TEXT NOT NULL,
	format TEXT NOT NULL,
	status TEXT NOT NULL,
	page_count INTEGER NOT NULL DEFAULT 0,
	record_count INTEGER NOT NULL DEFAULT 0,
	error_message TEXT,
	started_at TEXT NOT NULL,
	finished_at TEXT
);

CREATE TABLE IF NOT EXISTS page_record (
	job_id TEXT NOT NULL,
	pagenumber INTEGER NOT NULL,
	category INTEGER NOT NULL,
	isreviewable INTEGER NOT NULL,
	dos TEXT NOT NULL DEFAULT '',
	provider TEXT NOT NULL DEFAULT '',
	referencekey INTEGER NOT NULL,
	parentkey INTEGER NOT NULL,
	header TEXT NOT NULL DEFAULT '',
	facilitygroup TEXT NOT NULL DEFAULT '',
	isduplicate INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (job_id, pagenumber),
	FOREIGN KEY (job_id) REFERENCES segment_job(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_page_record_refkey ON page_record(job_id, referencekey);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}
