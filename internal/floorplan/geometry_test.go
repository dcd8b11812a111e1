package floorplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRect_DefersUntilMeasured(t *testing.T) {
	_, ok := MapRect(0, 600, 50, 50, 100, 80, 0, DefaultTableMin)
	assert.False(t, ok, "zero-width container must not compute")

	_, ok = MapRect(800, 0, 50, 50, 100, 80, 0, DefaultTableMin)
	assert.False(t, ok, "zero-height container must not compute")

	_, ok = MapRect(-10, -10, 50, 50, 100, 80, 0, DefaultTableMin)
	assert.False(t, ok)
}

func TestMapRect_CenterLaw(t *testing.T) {
	// Center always equals (pct/100)*dimension, for the full closed range.
	containers := []Size{{800, 600}, {375, 812}, {1, 1}, {1920, 1080}}
	pcts := []float64{0, 12.5, 50, 99.9, 100}

	for _, c := range containers {
		for _, px := range pcts {
			for _, py := range pcts {
				r, ok := MapRect(c.W, c.H, px, py, 120, 90, 0, DefaultTableMin)
				require.True(t, ok)
				assert.InDelta(t, px/100*c.W, r.CenterX(), 1e-9)
				assert.InDelta(t, py/100*c.H, r.CenterY(), 1e-9)
			}
		}
	}
}

func TestMapRect_ScaleFromSmallerDimension(t *testing.T) {
	// 1600x600 container: scale = 600/800 = 0.75.
	r, ok := MapRect(1600, 600, 50, 50, 200, 160, 0, Size{})
	require.True(t, ok)
	assert.InDelta(t, 150.0, r.W, 1e-9)
	assert.InDelta(t, 120.0, r.H, 1e-9)
}

func TestMapRect_MinimumFootprint(t *testing.T) {
	// Tiny reference sizes and tiny containers never drop below the floor.
	r, ok := MapRect(100, 100, 50, 50, 4, 4, 0, DefaultTableMin)
	require.True(t, ok)
	assert.Equal(t, 50.0, r.W)
	assert.Equal(t, 40.0, r.H)

	r, ok = MapRect(1, 1, 50, 50, 400, 400, 0, DefaultElementMin)
	require.True(t, ok)
	assert.GreaterOrEqual(t, r.W, 20.0)
	assert.GreaterOrEqual(t, r.H, 20.0)
}

func TestMapRect_RotationCarriedThrough(t *testing.T) {
	r, ok := MapRect(800, 600, 25, 75, 100, 80, 45, DefaultTableMin)
	require.True(t, ok)
	assert.Equal(t, 45.0, r.Rotation)
}

func TestMapRect_OutOfRangeLandsOffCanvas(t *testing.T) {
	// Trusted source data; no rejection, just off-canvas placement.
	r, ok := MapRect(800, 600, 150, -20, 100, 80, 0, Size{})
	require.True(t, ok)
	assert.Greater(t, r.CenterX(), 800.0)
	assert.Less(t, r.CenterY(), 0.0)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 10}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(25, 25))
	assert.False(t, r.Contains(40, 25), "right edge is exclusive")
	assert.False(t, r.Contains(25, 30), "bottom edge is exclusive")
	assert.False(t, r.Contains(9.99, 25))
}
