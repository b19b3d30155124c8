package service

import (
	"context"
	"encoding/json"
	"strings"

	"waypath-be/internal/common"
	"waypath-be/internal/entities"
	"waypath-be/internal/models"
	"waypath-be/internal/repository"
	"waypath-be/internal/waypoint"
)

// PathService defines the interface for path ingestion and listing
type PathService interface {
	SavePath(ctx context.Context, req *models.SavePathRequest) (*models.SavePathResponse, error)
	ListPaths(ctx context.Context, limit int, userEmail *string) ([]*entities.Path, error)
}

type pathService struct {
	pathRepo repository.PathRepository
}

// NewPathService creates a new path service
func NewPathService(pathRepo repository.PathRepository) PathService {
	return &pathService{pathRepo: pathRepo}
}

const defaultPathName = "path"

// SavePath validates and stores one path. Normalization is all-or-nothing:
// the first malformed waypoint aborts the request and nothing is persisted.
func (s *pathService) SavePath(ctx context.Context, req *models.SavePathRequest) (*models.SavePathResponse, error) {
	name := resolveName(req.Name)
	params := resolveParams(req.Params)

	raw := req.Waypoints
	if len(raw) == 0 {
		raw = req.Points
	}
	if len(raw) == 0 {
		return nil, common.ErrEmptyWaypoints
	}

	waypoints, err := waypoint.CoerceAll(raw)
	if err != nil {
		return nil, err
	}

	if _, err := s.pathRepo.Create(ctx, req.UserEmail, name, params, waypoints); err != nil {
		return nil, err
	}

	return &models.SavePathResponse{OK: true, Count: len(waypoints)}, nil
}

// ListPaths returns the most recent paths, optionally filtered by owner
func (s *pathService) ListPaths(ctx context.Context, limit int, userEmail *string) ([]*entities.Path, error) {
	return s.pathRepo.List(ctx, limit, userEmail)
}

// resolveName extracts the path name, falling back to the default when it is
// absent, blank, or not a JSON string.
func resolveName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return defaultPathName
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return defaultPathName
	}
	if name = strings.TrimSpace(name); name == "" {
		return defaultPathName
	}
	return name
}

// resolveParams passes the metadata bag through verbatim; its contents are
// never inspected. Absent or null becomes an empty object.
func resolveParams(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage(`{}`)
	}
	return raw
}
