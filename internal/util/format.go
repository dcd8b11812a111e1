package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatCovers renders a party size, e.g. "4 covers" or "1 cover".
func FormatCovers(covers int) string {
	if covers == 1 {
		return "1 cover"
	}
	return fmt.Sprintf("%d covers", covers)
}

// FormatMoney renders cents as dollars, e.g. 2550 → "$25.50".
func FormatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// FormatClock renders a timestamp as a short clock time, e.g. "6:30 PM".
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatWait renders how long a party has been waiting against its quote,
// e.g. "12m / 20m quoted" or "12m" when no quote was given.
func FormatWait(addedAt, now time.Time, quotedMinutes int) string {
	waited := int(now.Sub(addedAt).Minutes())
	if waited < 0 {
		waited = 0
	}
	if quotedMinutes <= 0 {
		return fmt.Sprintf("%dm", waited)
	}
	return fmt.Sprintf("%dm / %dm quoted", waited, quotedMinutes)
}

// FormatCapacity renders a table's cover range, e.g. "2-4" or "6".
func FormatCapacity(minCovers, maxCovers int) string {
	if minCovers <= 0 && maxCovers <= 0 {
		return "—"
	}
	if minCovers == maxCovers || minCovers <= 0 {
		return fmt.Sprintf("%d", maxCovers)
	}
	return fmt.Sprintf("%d-%d", minCovers, maxCovers)
}

// FormatTags joins guest tags for display, e.g. "vip · allergy:shellfish".
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return strings.Join(tags, " · ")
}

// FormatDateHuman formats a timestamp with humanized relative display:
// "Today", "Yesterday", "3d ago", "Jan 15", "Jan 15 '25".
func FormatDateHuman(t, now time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())

	days := int(today.Sub(day).Hours() / 24)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < 7:
		return fmt.Sprintf("%dd ago", days)
	case t.Year() == now.Year():
		return t.Format("Jan 02")
	default:
		return t.Format("Jan 02 '06")
	}
}

// TodayISO returns a date in ISO 8601 format (YYYY-MM-DD).
func TodayISO(now time.Time) string {
	return now.Format("2006-01-02")
}

// TruncateString truncates a string to maxLen and adds "..." if needed.
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
