package postgre

import (
	"context"
	"fmt"

	"meetbot/internal/meeting/repository"
	"meetbot/pkg/postgres"
)

// Dates and times are stored as zero-padded text so lexical order is chronological.
const schema = `
CREATE TABLE IF NOT EXISTS meetings (
	id          BIGSERIAL PRIMARY KEY,
	date        TEXT NOT NULL CHECK (date ~ '^\d{4}-\d{2}-\d{2}$'),
	title       TEXT NOT NULL,
	start_time  TEXT NOT NULL CHECK (start_time ~ '^\d{2}:\d{2}$'),
	end_time    TEXT NOT NULL CHECK (end_time ~ '^\d{2}:\d{2}$'),
	description TEXT NOT NULL DEFAULT '',
	location    TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CHECK (start_time < end_time)
);
CREATE INDEX IF NOT EXISTS idx_meetings_date_start ON meetings (date, start_time);
`

// Migrate creates the meetings table and its index when missing.
func Migrate(ctx context.Context, db postgres.Querier) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	return nil
}
