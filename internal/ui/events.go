package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KyleKincer/tableyeah-foh/internal/model"
	"github.com/KyleKincer/tableyeah-foh/internal/util"
)

// EventsModel represents the upcoming events screen.
type EventsModel struct {
	events []model.Event
	cursor int
	offset int
	now    func() time.Time
}

// NewEventsModel creates a new events model.
func NewEventsModel(events []model.Event, now func() time.Time) *EventsModel {
	if now == nil {
		now = time.Now
	}
	return &EventsModel{events: events, now: now}
}

// SelectedEvent returns the event under the cursor, or nil.
func (m *EventsModel) SelectedEvent() *model.Event {
	if len(m.events) == 0 || m.cursor >= len(m.events) {
		return nil
	}
	return &m.events[m.cursor]
}

// CursorDown moves the cursor down.
func (m *EventsModel) CursorDown() {
	if m.cursor < len(m.events)-1 {
		m.cursor++
		if m.cursor >= m.offset+8 {
			m.offset++
		}
	}
}

// CursorUp moves the cursor up.
func (m *EventsModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		if m.cursor < m.offset {
			m.offset--
		}
	}
}

// JumpToTop jumps to the first event.
func (m *EventsModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last event.
func (m *EventsModel) JumpToBottom() {
	if len(m.events) > 0 {
		m.cursor = len(m.events) - 1
		if m.cursor >= 8 {
			m.offset = m.cursor - 7
		}
	}
}

// View renders the events screen.
func (m *EventsModel) View(width, height int) string {
	if len(m.events) == 0 {
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render("    No upcoming events.")
	}

	now := m.now()
	visibleHeight := (height - 2) / 2
	var rows []string

	for i := m.offset; i < len(m.events) && i < m.offset+visibleHeight; i++ {
		e := m.events[i]

		titleStyle := lipgloss.NewStyle().Foreground(ColorText).Bold(true)
		metaStyle := lipgloss.NewStyle().Foreground(ColorMuted)
		if i == m.cursor {
			titleStyle = titleStyle.Foreground(ColorAccent)
		}

		title := titleStyle.Render(util.TruncateString(e.Name, width-8))
		meta := metaStyle.Render(fmt.Sprintf("%s at %s · %d/%d sold · %s",
			util.FormatDateHuman(e.StartsAt, now),
			util.FormatClock(e.StartsAt),
			e.Sold, e.Capacity,
			util.FormatMoney(e.PriceCents)))

		soldOut := e.Capacity > 0 && e.Sold >= e.Capacity
		if soldOut {
			meta += " " + lipgloss.NewStyle().Foreground(ColorRed).Render("SOLD OUT")
		}

		marker := "  "
		if i == m.cursor {
			marker = lipgloss.NewStyle().Foreground(ColorAccent).Render("▸ ")
		}
		rows = append(rows, marker+title, "    "+meta)
	}

	status := StatusBarStyle.Render(fmt.Sprintf("Upcoming events: %d", len(m.events)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		strings.Join(rows, "\n"),
		"",
		status,
	)
}
