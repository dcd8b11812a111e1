package floorplan

import (
	"fmt"
	"time"
)

// Band is the visual turn-time bucket for a seated table.
type Band int

const (
	BandGreen Band = iota
	BandAmber
	BandRed
)

func (b Band) String() string {
	switch b {
	case BandGreen:
		return "green"
	case BandAmber:
		return "amber"
	case BandRed:
		return "red"
	default:
		return "unknown"
	}
}

// DefaultExpectedMinutes is the turn time the canvas assumes when the party
// size is unknown.
const DefaultExpectedMinutes = 75

// RefreshInterval is how often seated-table colors and labels advance
// without a data refetch.
const RefreshInterval = 30 * time.Second

// ExpectedMinutes returns the party-size-dependent default turn time.
func ExpectedMinutes(covers int) int {
	switch {
	case covers <= 2:
		return 60
	case covers <= 4:
		return 75
	case covers <= 6:
		return 90
	default:
		return 105
	}
}

// ElapsedMinutes is the whole-minute difference between now and seatedAt.
func ElapsedMinutes(seatedAt, now time.Time) int {
	return int(now.Sub(seatedAt).Minutes())
}

// OverrunGraceMinutes is how far past the expected turn a table may run
// before it goes red. Hitting the expected time is normal service, not an
// alert, so amber stretches through this grace window.
const OverrunGraceMinutes = 15

// Classify buckets elapsed time against the expected turn: green below 75%
// of the expected time, red once the table runs more than the grace window
// past it, amber in between.
func Classify(elapsedMinutes, expectedMinutes int) Band {
	if expectedMinutes <= 0 {
		expectedMinutes = DefaultExpectedMinutes
	}
	pct := float64(elapsedMinutes) / float64(expectedMinutes) * 100
	switch {
	case pct < 75:
		return BandGreen
	case elapsedMinutes <= expectedMinutes+OverrunGraceMinutes:
		return BandAmber
	default:
		return BandRed
	}
}

// FormatElapsed renders a compact elapsed-time label: "45M" below an hour,
// "1H23" beyond, with the minutes component omitted when zero ("2H").
func FormatElapsed(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dM", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dH", h)
	}
	return fmt.Sprintf("%dH%02d", h, m)
}
