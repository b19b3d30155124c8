package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"waypath-be/internal/models"
)

type fakeStatsRepo struct {
	calls    int
	overview *models.StatsOverviewResponse
}

func (f *fakeStatsRepo) Overview(_ context.Context) (*models.StatsOverviewResponse, error) {
	f.calls++
	return f.overview, nil
}

// fakeCache is a map-backed Cache; TTLs are ignored.
type fakeCache struct {
	data map[string]string
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", errKeyMissing
	}
	return v, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return f.Set(ctx, key, string(b), ttl)
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest any) error {
	s, err := f.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(s), dest)
}

var errKeyMissing = errors.New("key not found")

func TestStatsOverviewUsesCache(t *testing.T) {
	repo := &fakeStatsRepo{overview: &models.StatsOverviewResponse{UsersCount: 3, PathsCount: 7}}
	c := &fakeCache{data: make(map[string]string)}
	svc := NewStatsService(repo, c)
	ctx := context.Background()

	first, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), first.UsersCount)
	require.Equal(t, 1, repo.calls)

	// Second call is served from the cache.
	second, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, repo.calls)
}

func TestStatsOverviewWithoutCache(t *testing.T) {
	repo := &fakeStatsRepo{overview: &models.StatsOverviewResponse{PathsCount: 1}}
	svc := NewStatsService(repo, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		got, err := svc.Overview(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(1), got.PathsCount)
	}
	require.Equal(t, 2, repo.calls)
}
