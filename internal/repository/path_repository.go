package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"waypath-be/internal/dbx"
	"waypath-be/internal/entities"
)

// PathRepository defines the interface for path database operations
type PathRepository interface {
	Create(ctx context.Context, userEmail *string, name string, params json.RawMessage, waypoints []entities.Waypoint) (*entities.Path, error)
	List(ctx context.Context, limit int, userEmail *string) ([]*entities.Path, error)
}

type pathRepository struct {
	db *sql.DB
}

// NewPathRepository creates a new path repository
func NewPathRepository(db *sql.DB) PathRepository {
	return &pathRepository{db: db}
}

// Create stores a path with its full waypoint list as one transactional
// write. The params bag goes in verbatim; waypoints are marshaled from their
// canonical form. Bind params are cast to JSONB in SQL so the driver can send
// them as plain text.
func (r *pathRepository) Create(ctx context.Context, userEmail *string, name string, params json.RawMessage, waypoints []entities.Waypoint) (*entities.Path, error) {
	wpJSON, err := json.Marshal(waypoints)
	if err != nil {
		return nil, fmt.Errorf("failed to encode waypoints: %w", err)
	}

	query := `
		INSERT INTO paths (user_email, name, params, waypoints)
		VALUES ($1, $2, $3::jsonb, $4::jsonb)
		RETURNING id, created_at
	`

	path := &entities.Path{
		UserEmail: userEmail,
		Name:      name,
		Params:    params,
		Waypoints: wpJSON,
	}

	err = dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		return tx.QueryRowContext(ctx, query,
			userEmail,
			name,
			string(params),
			string(wpJSON),
		).Scan(&path.ID, &path.CreatedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create path: %w", err)
	}

	return path, nil
}

// List returns up to limit paths, most recently created first, optionally
// filtered by owner email.
func (r *pathRepository) List(ctx context.Context, limit int, userEmail *string) ([]*entities.Path, error) {
	query := `
		SELECT id, user_email, name, params, waypoints, created_at
		FROM paths
		ORDER BY created_at DESC
		LIMIT $1
	`
	args := []any{limit}

	if userEmail != nil {
		query = `
			SELECT id, user_email, name, params, waypoints, created_at
			FROM paths
			WHERE user_email = $2
			ORDER BY created_at DESC
			LIMIT $1
		`
		args = append(args, *userEmail)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list paths: %w", err)
	}
	defer rows.Close()

	var paths []*entities.Path
	for rows.Next() {
		var (
			path      entities.Path
			params    []byte
			waypoints []byte
		)
		err := rows.Scan(
			&path.ID,
			&path.UserEmail,
			&path.Name,
			&params,
			&waypoints,
			&path.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan path: %w", err)
		}
		path.Params = json.RawMessage(params)
		path.Waypoints = json.RawMessage(waypoints)
		paths = append(paths, &path)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating paths: %w", err)
	}

	return paths, nil
}
