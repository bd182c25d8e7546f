package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/j-veylop/freshbox-analyzer/internal/logger"
	"github.com/j-veylop/freshbox-analyzer/internal/models"
)

const runColumns = `id, run_id, created_at, optimization_target, recommendation,
	highest_month, highest_cost_per_delivery, total_operating_cost, chart_path`

// InsertRun records a run summary together with its category averages.
func (db *DB) InsertRun(run *models.RunSummary) error {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO runs (
			run_id, created_at, optimization_target, recommendation,
			highest_month, highest_cost_per_delivery, total_operating_cost, chart_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		createdAt.UTC().Format(timeLayout),
		string(run.OptimizationTarget),
		run.Recommendation,
		nullString(run.HighestMonth),
		run.HighestCostPerDelivery,
		run.TotalOperatingCost,
		nullString(run.ChartPath),
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read run id: %w", err)
	}

	for i, avg := range run.Averages {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO run_averages (run_id, position, category, average) VALUES (?, ?, ?, ?)",
			id, i, string(avg.Category), avg.Average,
		)
		if err != nil {
			return fmt.Errorf("failed to insert average for %s: %w", avg.Category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}

	run.ID = id
	return nil
}

// GetRecentRuns returns the runs recorded within the time range, newest first.
func (db *DB) GetRecentRuns(tr models.TimeRange) (*models.RunHistory, error) {
	query := "SELECT " + runColumns + " FROM runs "
	var args []any
	if days := tr.Days(); days > 0 {
		query += sqlTimeFilterClause + " "
		args = append(args, fmt.Sprintf("-%d days", days))
	}
	query += "ORDER BY created_at DESC, id DESC"

	runs, err := db.queryRuns(query, args...)
	if err != nil {
		return nil, err
	}

	return &models.RunHistory{Range: tr, Runs: runs}, nil
}

// GetLastRun returns the most recently recorded run, or nil if there is none.
func (db *DB) GetLastRun() (*models.RunSummary, error) {
	runs, err := db.queryRuns("SELECT " + runColumns + " FROM runs ORDER BY created_at DESC, id DESC LIMIT 1")
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// CountRuns returns the total number of recorded runs.
func (db *DB) CountRuns() (int, error) {
	var n int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

// DeleteRunsOlderThan removes runs created more than the given number of days
// ago and returns how many were deleted.
func (db *DB) DeleteRunsOlderThan(days int) (int64, error) {
	result, err := db.ExecContext(context.Background(),
		"DELETE FROM runs WHERE created_at < datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old runs: %w", err)
	}
	return result.RowsAffected()
}

func (db *DB) queryRuns(query string, args ...any) ([]models.RunSummary, error) {
	rows, err := db.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}

	var runs []models.RunSummary
	for rows.Next() {
		var run models.RunSummary
		var createdAt, target string
		var month, chartPath sql.NullString

		err := rows.Scan(
			&run.ID,
			&run.RunID,
			&createdAt,
			&target,
			&run.Recommendation,
			&month,
			&run.HighestCostPerDelivery,
			&run.TotalOperatingCost,
			&chartPath,
		)
		if err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		run.CreatedAt, err = time.ParseInLocation(timeLayout, createdAt, time.UTC)
		if err != nil {
			logger.Warn("unparseable run timestamp", "run_id", run.RunID, "value", createdAt)
		}
		run.OptimizationTarget = models.Category(target)
		run.HighestMonth = month.String
		run.ChartPath = chartPath.String
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		logger.Error("failed to close rows", "error", err)
	}

	// Averages are loaded after the cursor is closed so the single
	// SQLite connection is free again.
	for i := range runs {
		averages, err := db.getRunAverages(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Averages = averages
	}

	return runs, nil
}

func (db *DB) getRunAverages(id int64) ([]models.CategoryAverage, error) {
	rows, err := db.QueryContext(context.Background(),
		"SELECT category, average FROM run_averages WHERE run_id = ? ORDER BY position", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query run averages: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("failed to close rows", "error", err)
		}
	}()

	var averages []models.CategoryAverage
	for rows.Next() {
		var category string
		var avg models.CategoryAverage
		if err := rows.Scan(&category, &avg.Average); err != nil {
			return nil, fmt.Errorf("failed to scan run average: %w", err)
		}
		avg.Category = models.Category(category)
		if !avg.Category.Valid() {
			logger.Warn("skipping run average with unknown category", "run", id, "category", category)
			continue
		}
		averages = append(averages, avg)
	}

	return averages, rows.Err()
}

// nullString returns a sql.NullString from a string.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
