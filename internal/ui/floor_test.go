package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KyleKincer/tableyeah-foh/internal/floorplan"
	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

func pct(v float64) *float64 { return &v }

func fixedNow() time.Time {
	return time.Date(2025, 6, 14, 19, 30, 0, 0, time.UTC)
}

func testPlan() model.FloorPlan {
	return model.FloorPlan{
		Tables: []model.Table{
			{
				ID: "t1", Number: "1", MinCovers: 2, MaxCovers: 4,
				Shape:    model.ShapeCircle,
				Status:   model.StatusAvailable,
				Geometry: model.Geometry{PosX: pct(25), PosY: pct(25), Width: 60, Height: 60},
			},
			{
				ID: "t2", Number: "2", MinCovers: 2, MaxCovers: 6,
				Shape:    model.ShapeRectangle,
				Status:   model.StatusSeated,
				Current:  &model.Seating{Covers: 4, SeatedAt: fixedNow().Add(-40 * time.Minute)},
				Geometry: model.Geometry{PosX: pct(75), PosY: pct(60), Width: 80, Height: 50},
			},
			{
				// Never placed; must not render or take focus.
				ID: "t3", Number: "3", MinCovers: 2, MaxCovers: 2,
				Shape:  model.ShapeSquare,
				Status: model.StatusAvailable,
			},
		},
		Elements: []model.Element{
			{ID: "e1", Kind: model.ElementBar, Active: true, Geometry: model.Geometry{PosX: pct(50), PosY: pct(5), Width: 300, Height: 40}},
		},
	}
}

func newTestFloor() *FloorModel {
	f := NewFloorModel(floorplan.NewSession(nil), "2025-06-14", fixedNow)
	f.SetPlan(testPlan(), fixedNow(), false)
	return f
}

func TestFloorEmptyState(t *testing.T) {
	f := NewFloorModel(floorplan.NewSession(nil), "2025-06-14", fixedNow)
	f.SetPlan(model.FloorPlan{Tables: []model.Table{
		{ID: "t3", Number: "3", Status: model.StatusAvailable},
	}}, fixedNow(), false)

	out := f.View(100, 30)
	assert.Contains(t, out, "NO FLOOR PLAN")
	assert.Nil(t, f.TableAt(10, 10), "empty state must not report hits")
}

func TestFloorFocusSkipsUnpositioned(t *testing.T) {
	f := newTestFloor()

	require.NotNil(t, f.FocusedTable())
	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		seen[f.FocusedTable().ID] = true
		f.FocusNext()
	}
	assert.True(t, seen["t1"])
	assert.True(t, seen["t2"])
	assert.False(t, seen["t3"], "unpositioned table must never take focus")
}

func TestFloorFocusCyclesInReadingOrder(t *testing.T) {
	f := newTestFloor()

	first := f.FocusedTable().ID
	assert.Equal(t, "t1", first, "lower PosY focuses first")
	f.FocusNext()
	assert.Equal(t, "t2", f.FocusedTable().ID)
	f.FocusNext()
	assert.Equal(t, first, f.FocusedTable().ID, "focus wraps")
	f.FocusPrev()
	assert.Equal(t, "t2", f.FocusedTable().ID)
}

func TestFloorHitTestMatchesRender(t *testing.T) {
	f := newTestFloor()
	f.View(100, 40)

	require.NotEmpty(t, f.hits)
	for _, h := range f.hits {
		r := h.rect
		cx := r.x + r.w/2
		cy := r.y + r.h/2
		got := f.TableAt(cx, cy)
		require.NotNil(t, got)
		assert.Equal(t, f.tables[f.positioned[h.index]].ID, got.ID)
	}
}

func TestFloorClickSeatsWalkIn(t *testing.T) {
	f := newTestFloor()
	f.View(100, 40)
	require.NotEmpty(t, f.hits)

	f.Session().EnterWalkIn(3)
	r := f.hits[0].rect
	cmd := f.Click(r.x+r.w/2, r.y+r.h/2+canvasTop)
	assert.Equal(t, floorplan.CmdSeatWalkIn, cmd.Kind)
	assert.Equal(t, 3, cmd.Covers)
}

func TestFloorClickBackgroundWhileSeating(t *testing.T) {
	f := newTestFloor()
	f.View(100, 40)

	// A stray background tap must not kick the host out of seating mode.
	f.Session().EnterWalkIn(2)
	cmd := f.Click(0, canvasTop)
	assert.Equal(t, floorplan.CmdNone, cmd.Kind)
	assert.Equal(t, floorplan.ModeWalkIn, f.Session().Mode())
}

func TestFloorWalkInPrompt(t *testing.T) {
	f := newTestFloor()

	f.StartWalkInPrompt()
	assert.True(t, f.PromptActive())

	f.prompt.SetValue("nope")
	assert.False(t, f.ConfirmPrompt())
	assert.True(t, f.PromptActive())

	f.prompt.SetValue("4")
	assert.True(t, f.ConfirmPrompt())
	assert.False(t, f.PromptActive())
	assert.Equal(t, floorplan.ModeWalkIn, f.Session().Mode())
	assert.Equal(t, 4, f.Session().WalkInCovers())
}

func TestFloorStatsLine(t *testing.T) {
	f := newTestFloor()
	out := f.View(100, 40)

	line := strings.SplitN(out, "\n", 2)[0]
	assert.Contains(t, line, "1 open")
	assert.Contains(t, line, "1 seated")
	assert.Contains(t, line, "4 covers")
}

func TestFloorOfflineBadge(t *testing.T) {
	f := NewFloorModel(floorplan.NewSession(nil), "2025-06-14", fixedNow)
	f.SetPlan(testPlan(), fixedNow().Add(-10*time.Minute), true)

	out := f.View(100, 40)
	assert.Contains(t, out, "offline")
}

func TestFloorServerPickerByIndex(t *testing.T) {
	f := newTestFloor()
	f.SetServers([]model.Server{
		{ID: "s1", Name: "Dana", Color: "#ff0000", Active: true},
		{ID: "s2", Name: "Robin", Color: "#00ff00", Active: true},
	})

	f.Session().EnterAssignServers()
	require.True(t, f.SelectServerByIndex(2))
	assert.Equal(t, "s2", f.Session().SelectedServerID())
	assert.False(t, f.SelectServerByIndex(3), "out-of-range index is rejected")
}
