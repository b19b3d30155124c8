package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"waypath-be/internal/common"
	"waypath-be/internal/entities"
	"waypath-be/internal/models"
	"waypath-be/internal/waypoint"
)

type storedPath struct {
	userEmail *string
	name      string
	params    json.RawMessage
	waypoints []entities.Waypoint
}

// fakePathRepo records creates so tests can assert exactly what would have
// been persisted.
type fakePathRepo struct {
	created []storedPath
	listed  []*entities.Path
}

func (f *fakePathRepo) Create(_ context.Context, userEmail *string, name string, params json.RawMessage, waypoints []entities.Waypoint) (*entities.Path, error) {
	f.created = append(f.created, storedPath{userEmail: userEmail, name: name, params: params, waypoints: waypoints})
	wp, _ := json.Marshal(waypoints)
	return &entities.Path{
		ID:        int64(len(f.created)),
		UserEmail: userEmail,
		Name:      name,
		Params:    params,
		Waypoints: wp,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakePathRepo) List(_ context.Context, limit int, _ *string) ([]*entities.Path, error) {
	if limit < len(f.listed) {
		return f.listed[:limit], nil
	}
	return f.listed, nil
}

func rawList(elems ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(elems))
	for _, e := range elems {
		out = append(out, json.RawMessage(e))
	}
	return out
}

func TestSavePathDefaultsNameAndParams(t *testing.T) {
	repo := &fakePathRepo{}
	svc := NewPathService(repo)

	resp, err := svc.SavePath(context.Background(), &models.SavePathRequest{
		Waypoints: rawList(`[0,0]`, `[1,1,1]`),
	})
	require.NoError(t, err)
	require.True(t, resp.OK)
	require.Equal(t, 2, resp.Count)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	require.Equal(t, "path", stored.name)
	require.JSONEq(t, `{}`, string(stored.params))
	require.Nil(t, stored.userEmail)
	require.Equal(t, []entities.Waypoint{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
	}, stored.waypoints)
}

func TestSavePathNameResolution(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string used", raw: `"warehouse-scan"`, want: "warehouse-scan"},
		{name: "string trimmed", raw: `"  scan-7  "`, want: "scan-7"},
		{name: "blank falls back", raw: `"   "`, want: "path"},
		{name: "null falls back", raw: `null`, want: "path"},
		{name: "number falls back", raw: `42`, want: "path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePathRepo{}
			svc := NewPathService(repo)

			_, err := svc.SavePath(context.Background(), &models.SavePathRequest{
				Name:      json.RawMessage(tt.raw),
				Waypoints: rawList(`[1,2]`),
			})
			require.NoError(t, err)
			require.Equal(t, tt.want, repo.created[0].name)
		})
	}
}

func TestSavePathParamsStoredVerbatim(t *testing.T) {
	repo := &fakePathRepo{}
	svc := NewPathService(repo)

	params := `{"speed":2,"mode":"survey","nested":{"a":[1,2,3]}}`
	_, err := svc.SavePath(context.Background(), &models.SavePathRequest{
		Params:    json.RawMessage(params),
		Waypoints: rawList(`[1,2]`),
	})
	require.NoError(t, err)
	require.Equal(t, params, string(repo.created[0].params))
}

func TestSavePathPointsAlias(t *testing.T) {
	repo := &fakePathRepo{}
	svc := NewPathService(repo)

	resp, err := svc.SavePath(context.Background(), &models.SavePathRequest{
		Points: rawList(`[1,2]`, `[3,4]`),
	})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Count)
	require.Len(t, repo.created, 1)
}

func TestSavePathEmptyWaypoints(t *testing.T) {
	for _, req := range []*models.SavePathRequest{
		{},                               // both fields absent
		{Waypoints: []json.RawMessage{}}, // explicit empty list
		{Points: []json.RawMessage{}},    // empty alias
	} {
		repo := &fakePathRepo{}
		svc := NewPathService(repo)

		resp, err := svc.SavePath(context.Background(), req)
		require.ErrorIs(t, err, common.ErrEmptyWaypoints)
		require.Nil(t, resp)
		require.Empty(t, repo.created, "nothing may be persisted")
	}
}

func TestSavePathMalformedWaypointAbortsEverything(t *testing.T) {
	repo := &fakePathRepo{}
	svc := NewPathService(repo)

	resp, err := svc.SavePath(context.Background(), &models.SavePathRequest{
		Waypoints: rawList(`[1,2]`, `"bad"`),
	})
	require.Nil(t, resp)

	var me *waypoint.MalformedError
	require.ErrorAs(t, err, &me)
	require.Equal(t, 1, me.Index)
	require.Empty(t, repo.created, "no partial path may be persisted")
}

func TestSavePathOwnerEmailPassedThrough(t *testing.T) {
	repo := &fakePathRepo{}
	svc := NewPathService(repo)

	owner := "ada@example.com"
	_, err := svc.SavePath(context.Background(), &models.SavePathRequest{
		UserEmail: &owner,
		Waypoints: rawList(`[1,2]`),
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created[0].userEmail)
	require.Equal(t, owner, *repo.created[0].userEmail)
}
