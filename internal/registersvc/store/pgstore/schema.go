package pgstore

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS visitors (
		id         UUID PRIMARY KEY,
		seq        BIGSERIAL,
		name       TEXT NOT NULL DEFAULT '',
		company    TEXT NOT NULL DEFAULT '',
		visiting   TEXT NOT NULL DEFAULT '',
		entry_date TEXT NOT NULL DEFAULT '',
		time_in    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS contractors (
		id             UUID PRIMARY KEY,
		seq            BIGSERIAL,
		company        TEXT NOT NULL DEFAULT '',
		engineer       TEXT NOT NULL DEFAULT '',
		job_call_out   TEXT NOT NULL DEFAULT '',
		action         TEXT NOT NULL DEFAULT '',
		entry_date     TEXT NOT NULL DEFAULT '',
		time_in        TEXT NOT NULL DEFAULT '',
		time_out       TEXT NOT NULL DEFAULT '',
		phone_number   TEXT NOT NULL DEFAULT '',
		access_card_no TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS visitors_entry_date_idx ON visitors (entry_date)`,
	`CREATE INDEX IF NOT EXISTS contractors_entry_date_idx ON contractors (entry_date)`,
}

// EnsureSchema creates the register tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
