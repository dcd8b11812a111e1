package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KyleKincer/tableyeah-foh/internal/api"
	"github.com/KyleKincer/tableyeah-foh/internal/model"
	"github.com/KyleKincer/tableyeah-foh/internal/util"
)

// SettingsModel represents the settings screen.
type SettingsModel struct {
	staff     *api.StaffInfo
	venue     string
	baseURL   string
	servers   []model.Server
	fetchedAt time.Time
	fromCache bool
	version   string
	now       func() time.Time
}

// NewSettingsModel creates a new settings model.
func NewSettingsModel(staff *api.StaffInfo, venue, baseURL, version string, now func() time.Time) *SettingsModel {
	if now == nil {
		now = time.Now
	}
	return &SettingsModel{
		staff:   staff,
		venue:   venue,
		baseURL: baseURL,
		version: version,
		now:     now,
	}
}

// SetServers updates the server roster shown on the screen.
func (m *SettingsModel) SetServers(servers []model.Server) {
	m.servers = servers
}

// SetFreshness records when floor data was last fetched and whether it
// came from the local cache.
func (m *SettingsModel) SetFreshness(fetchedAt time.Time, fromCache bool) {
	m.fetchedAt = fetchedAt
	m.fromCache = fromCache
}

func settingsRow(label, value string) string {
	return LabelStyle.Width(16).Render(label) + lipgloss.NewStyle().Foreground(ColorText).Render(value)
}

// View renders the settings screen.
func (m *SettingsModel) View(width, height int) string {
	now := m.now()
	var sections []string

	sections = append(sections, TitleStyle.Render("Session"))
	if m.staff != nil {
		sections = append(sections,
			settingsRow("Signed in as", fmt.Sprintf("%s (%s)", m.staff.Name, m.staff.Role)),
			settingsRow("Staff ID", m.staff.StaffID))
		if !m.staff.ExpiresAt.IsZero() {
			expiry := m.staff.ExpiresAt.Format("Jan 2 15:04")
			if m.staff.ExpiresSoon(now, 24*time.Hour) {
				expiry = ErrorStyle.Render(expiry + " (expiring soon)")
			}
			sections = append(sections, settingsRow("Token expires", expiry))
		}
	} else {
		sections = append(sections, settingsRow("Signed in as", "unknown staff"))
	}
	sections = append(sections,
		settingsRow("Venue", m.venue),
		settingsRow("API", m.baseURL))

	sections = append(sections, "", TitleStyle.Render("Data"))
	if m.fetchedAt.IsZero() {
		sections = append(sections, settingsRow("Floor plan", "not loaded"))
	} else {
		age := now.Sub(m.fetchedAt).Round(time.Second)
		source := "live"
		if m.fromCache {
			source = OfflineStyle.Render("cached")
		}
		sections = append(sections,
			settingsRow("Floor plan", fmt.Sprintf("%s, fetched %s ago", source, age)))
	}

	sections = append(sections, "", TitleStyle.Render(fmt.Sprintf("Servers on shift (%d)", len(m.servers))))
	if len(m.servers) == 0 {
		sections = append(sections, LabelStyle.Render("  none loaded"))
	}
	for _, s := range m.servers {
		chip := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render("● ")
		sections = append(sections, "  "+chip+util.TruncateString(s.Name, 30))
	}

	sections = append(sections, "", LabelStyle.Render("tableyeah-foh "+m.version))

	body := strings.Join(sections, "\n")
	return lipgloss.NewStyle().Width(width).Height(height).Padding(0, 2).Render(body)
}
