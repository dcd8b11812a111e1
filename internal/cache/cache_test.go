package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "foh.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	fetched := time.Date(2026, 8, 28, 17, 45, 0, 0, time.UTC)

	x, y := 25.0, 60.0
	plan := model.FloorPlan{
		Tables: []model.Table{{
			ID:     "t1",
			Number: "12",
			Status: model.StatusAvailable,
			Geometry: model.Geometry{
				PosX: &x, PosY: &y, Width: 100, Height: 80,
			},
		}},
	}
	require.NoError(t, s.Put("harborview", KindFloorPlan, plan, fetched))

	var got model.FloorPlan
	at, err := s.Get("harborview", KindFloorPlan, &got)
	require.NoError(t, err)
	assert.True(t, at.Equal(fetched))
	require.Len(t, got.Tables, 1)
	assert.Equal(t, "12", got.Tables[0].Number)
	require.True(t, got.Tables[0].Geometry.Positioned())
	assert.Equal(t, 25.0, *got.Tables[0].Geometry.PosX)
}

func TestStore_PutReplaces(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put("harborview", KindServers, []model.Server{{ID: "srv-1"}}, time.Now()))
	later := time.Now().Add(time.Minute).Truncate(time.Second).UTC()
	require.NoError(t, s.Put("harborview", KindServers, []model.Server{{ID: "srv-2"}, {ID: "srv-3"}}, later))

	var got []model.Server
	at, err := s.Get("harborview", KindServers, &got)
	require.NoError(t, err)
	assert.True(t, at.Equal(later))
	assert.Len(t, got, 2)
}

func TestStore_MissAndVenueIsolation(t *testing.T) {
	s := openTestStore(t)

	var got []model.Server
	_, err := s.Get("harborview", KindServers, &got)
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, s.Put("elsewhere", KindServers, []model.Server{{ID: "srv-1"}}, time.Now()))
	_, err = s.Get("harborview", KindServers, &got)
	assert.ErrorIs(t, err, ErrMiss, "snapshots are per venue")
}

func TestStore_Purge(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("harborview", KindWaitlist, []model.WaitlistEntry{{ID: "w1"}}, time.Now()))
	require.NoError(t, s.Purge("harborview"))

	var got []model.WaitlistEntry
	_, err := s.Get("harborview", KindWaitlist, &got)
	assert.ErrorIs(t, err, ErrMiss)
}
