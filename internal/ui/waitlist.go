package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KyleKincer/tableyeah-foh/internal/model"
	"github.com/KyleKincer/tableyeah-foh/internal/util"
)

// WaitlistModel represents the waitlist screen.
type WaitlistModel struct {
	entries []model.WaitlistEntry
	cursor  int
	offset  int
	now     func() time.Time
}

// NewWaitlistModel creates a new waitlist model.
func NewWaitlistModel(entries []model.WaitlistEntry, now func() time.Time) *WaitlistModel {
	if now == nil {
		now = time.Now
	}
	return &WaitlistModel{entries: entries, now: now}
}

// SelectedEntry returns the entry under the cursor, or nil.
func (m *WaitlistModel) SelectedEntry() *model.WaitlistEntry {
	if len(m.entries) == 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return &m.entries[m.cursor]
}

// CursorDown moves the cursor down.
func (m *WaitlistModel) CursorDown() {
	if m.cursor < len(m.entries)-1 {
		m.cursor++
		if m.cursor >= m.offset+10 {
			m.offset++
		}
	}
}

// CursorUp moves the cursor up.
func (m *WaitlistModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		if m.cursor < m.offset {
			m.offset--
		}
	}
}

// JumpToTop jumps to the first entry.
func (m *WaitlistModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last entry.
func (m *WaitlistModel) JumpToBottom() {
	if len(m.entries) > 0 {
		m.cursor = len(m.entries) - 1
		if m.cursor >= 10 {
			m.offset = m.cursor - 9
		}
	}
}

// View renders the waitlist.
func (m *WaitlistModel) View(width, height int) string {
	if len(m.entries) == 0 {
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render("    The waitlist is empty.")
	}

	now := m.now()
	visibleHeight := height - 2
	var rows []string

	for i := m.offset; i < len(m.entries) && i < m.offset+visibleHeight; i++ {
		e := m.entries[i]
		wait := util.FormatWait(e.AddedAt, now, e.QuotedMinutes)

		// Past-quote parties get flagged so the host sees them first.
		waitStyle := lipgloss.NewStyle().Foreground(ColorMuted)
		if e.QuotedMinutes > 0 && now.Sub(e.AddedAt) > time.Duration(e.QuotedMinutes)*time.Minute {
			waitStyle = waitStyle.Foreground(ColorRed)
		}

		line := fmt.Sprintf("%-24s %-12s %s",
			util.TruncateString(e.Name, 24),
			util.FormatCovers(e.Covers),
			waitStyle.Render(wait))

		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}
		rows = append(rows, style.Width(width).Render("  "+line))
	}

	status := StatusBarStyle.Render(fmt.Sprintf("Waiting parties: %d", len(m.entries)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		strings.Join(rows, "\n"),
		"",
		status,
	)
}
