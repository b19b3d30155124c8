package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"waypath-be/internal/models"
)

// StatsRepository defines the read-only reporting queries behind the
// dashboard. No invariants live here; it shares the connection pool with the
// other repositories.
type StatsRepository interface {
	Overview(ctx context.Context) (*models.StatsOverviewResponse, error)
}

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *sql.DB) StatsRepository {
	return &statsRepository{db: db}
}

// Overview gathers the dashboard aggregates: total counts, per-day series
// for the last 7 days, and the 5 most recent users and paths.
func (r *statsRepository) Overview(ctx context.Context) (*models.StatsOverviewResponse, error) {
	out := &models.StatsOverviewResponse{}

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&out.UsersCount); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM paths`).Scan(&out.PathsCount); err != nil {
		return nil, fmt.Errorf("failed to count paths: %w", err)
	}

	var err error
	if out.UsersLast7ByDay, err = r.perDay(ctx, "users"); err != nil {
		return nil, err
	}
	if out.PathsLast7ByDay, err = r.perDay(ctx, "paths"); err != nil {
		return nil, err
	}
	if out.RecentUsers, err = r.recentUsers(ctx); err != nil {
		return nil, err
	}
	if out.RecentPaths, err = r.recentPaths(ctx); err != nil {
		return nil, err
	}

	return out, nil
}

// perDay builds a zero-filled per-day creation count for the last 7 days.
// The table name is restricted to the two known tables and never comes from
// caller input.
func (r *statsRepository) perDay(ctx context.Context, table string) ([]models.DayCount, error) {
	if table != "users" && table != "paths" {
		return nil, fmt.Errorf("unsupported table %q", table)
	}

	query := fmt.Sprintf(`
		WITH days AS (
			SELECT generate_series((CURRENT_DATE - INTERVAL '6 day')::date,
			                       CURRENT_DATE::date, '1 day') AS d)
		SELECT d::date AS day, COALESCE(COUNT(t.*), 0) AS cnt
		FROM days LEFT JOIN %s t ON t.created_at::date = d::date
		GROUP BY day ORDER BY day
	`, table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s per day: %w", table, err)
	}
	defer rows.Close()

	var series []models.DayCount
	for rows.Next() {
		var (
			day time.Time
			cnt int64
		)
		if err := rows.Scan(&day, &cnt); err != nil {
			return nil, fmt.Errorf("failed to scan day count: %w", err)
		}
		series = append(series, models.DayCount{Day: day.Format("2006-01-02"), Count: cnt})
	}
	return series, rows.Err()
}

func (r *statsRepository) recentUsers(ctx context.Context) ([]models.RecentUser, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, username, email, created_at
		FROM users ORDER BY created_at DESC NULLS LAST LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent users: %w", err)
	}
	defer rows.Close()

	var users []models.RecentUser
	for rows.Next() {
		var u models.RecentUser
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *statsRepository) recentPaths(ctx context.Context) ([]models.RecentPath, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at,
		       COALESCE(jsonb_array_length(waypoints), 0) AS points
		FROM paths ORDER BY created_at DESC NULLS LAST LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent paths: %w", err)
	}
	defer rows.Close()

	var paths []models.RecentPath
	for rows.Next() {
		var p models.RecentPath
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.Points); err != nil {
			return nil, fmt.Errorf("failed to scan recent path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}
