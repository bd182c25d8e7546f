package db

import (
	"context"
	"fmt"
)

// FixLegacyTimeFormats rewrites created_at values that were stored with a
// zone suffix (time.Time's default String form) into SQLite's datetime
// layout, so datetime('now', ...) comparisons keep working.
func (db *DB) FixLegacyTimeFormats() error {
	query := `UPDATE runs
		SET created_at = SUBSTR(created_at, 1, 19)
		WHERE length(created_at) > 19 AND created_at LIKE '% UTC'`

	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("failed to fix legacy time formats: %w", err)
	}
	return nil
}
