package service

import (
	"context"
	"time"

	"waypath-be/internal/cache"
	"waypath-be/internal/models"
	"waypath-be/internal/repository"
)

// StatsService serves the dashboard aggregates, with a short-lived cache in
// front of the reporting queries when Redis is available.
type StatsService interface {
	Overview(ctx context.Context) (*models.StatsOverviewResponse, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	cache     cache.Cache
}

// NewStatsService creates a new stats service. cacheClient may be nil.
func NewStatsService(statsRepo repository.StatsRepository, cacheClient cache.Cache) StatsService {
	return &statsService{statsRepo: statsRepo, cache: cacheClient}
}

const (
	statsCacheKey = "stats:overview"
	statsCacheTTL = 15 * time.Second
)

// Overview returns the dashboard aggregates. Dashboards poll this endpoint,
// so the result is cached briefly; staleness is harmless here.
func (s *statsService) Overview(ctx context.Context) (*models.StatsOverviewResponse, error) {
	if s.cache != nil {
		var cached models.StatsOverviewResponse
		if err := s.cache.GetJSON(ctx, statsCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	overview, err := s.statsRepo.Overview(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, statsCacheKey, overview, statsCacheTTL)
	}

	return overview, nil
}
