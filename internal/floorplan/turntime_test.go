package floorplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Banding(t *testing.T) {
	cases := []struct {
		elapsed  int
		expected int
		want     Band
	}{
		{50, 75, BandGreen},
		{75, 75, BandAmber},
		{76, 75, BandAmber},
		{80, 75, BandAmber},
		{100, 100, BandAmber},
		{76, 60, BandRed},
		{0, 75, BandGreen},
		{200, 75, BandRed},
		// Grace-window boundary: amber through expected+15, red beyond.
		{90, 75, BandAmber},
		{91, 75, BandRed},
		{75, 60, BandAmber},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.elapsed, c.expected),
			"elapsed=%d expected=%d", c.elapsed, c.expected)
	}
}

func TestClassify_ZeroExpectedFallsBackToDefault(t *testing.T) {
	// 50/75 = 66% → green under the default.
	assert.Equal(t, BandGreen, Classify(50, 0))
	assert.Equal(t, BandAmber, Classify(75, 0))
}

func TestExpectedMinutes(t *testing.T) {
	assert.Equal(t, 60, ExpectedMinutes(1))
	assert.Equal(t, 60, ExpectedMinutes(2))
	assert.Equal(t, 75, ExpectedMinutes(3))
	assert.Equal(t, 75, ExpectedMinutes(4))
	assert.Equal(t, 90, ExpectedMinutes(5))
	assert.Equal(t, 90, ExpectedMinutes(6))
	assert.Equal(t, 105, ExpectedMinutes(7))
	assert.Equal(t, 105, ExpectedMinutes(12))
}

func TestElapsedMinutes_WholeMinutes(t *testing.T) {
	seated := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, ElapsedMinutes(seated, seated.Add(59*time.Second)))
	assert.Equal(t, 1, ElapsedMinutes(seated, seated.Add(61*time.Second)))
	assert.Equal(t, 83, ElapsedMinutes(seated, seated.Add(83*time.Minute+30*time.Second)))
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0M"},
		{36, "36M"},
		{45, "45M"},
		{59, "59M"},
		{60, "1H"},
		{61, "1H01"},
		{83, "1H23"},
		{120, "2H"},
		{125, "2H05"},
		{-5, "0M"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatElapsed(c.minutes), "minutes=%d", c.minutes)
	}
}
