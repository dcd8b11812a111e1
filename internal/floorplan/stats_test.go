package floorplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

func pct(v float64) *float64 { return &v }

func TestComputeStats(t *testing.T) {
	now := time.Now()
	tables := []model.Table{
		{ID: "t1", Status: model.StatusAvailable},
		{ID: "t2", Status: model.StatusAvailable},
		{ID: "t3", Status: model.StatusSeated, Current: &model.Seating{Covers: 4, SeatedAt: now}},
		{ID: "t4", Status: model.StatusOccupied, Current: &model.Seating{Covers: 2, SeatedAt: now}},
		{ID: "t5", Status: model.StatusUpcoming},
		{ID: "t6", Status: model.StatusSeated}, // snapshot missing party detail
	}

	s := ComputeStats(tables)
	assert.Equal(t, 2, s.Available)
	assert.Equal(t, 3, s.Seated)
	assert.Equal(t, 6, s.SeatedCovers)
	assert.Equal(t, 1, s.Upcoming)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestHasPositionedTables(t *testing.T) {
	assert.False(t, HasPositionedTables(nil))
	assert.False(t, HasPositionedTables([]model.Table{
		{ID: "t1"},
		{ID: "t2", Geometry: model.Geometry{PosX: pct(40)}}, // half-placed
	}))
	assert.True(t, HasPositionedTables([]model.Table{
		{ID: "t1"},
		{ID: "t2", Geometry: model.Geometry{PosX: pct(40), PosY: pct(60)}},
	}))
}
