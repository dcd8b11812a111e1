package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SetupSettings is the saved result of first-run setup. The access token
// lives in its own 0600 file, never here.
type SetupSettings struct {
	Completed  bool   `json:"completed"`
	APIBaseURL string `json:"api_base_url"`
}

func setupPath(configDir string) string {
	return filepath.Join(configDir, "setup.json")
}

func loadSetupSettings(configDir string) (SetupSettings, error) {
	path := setupPath(configDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return SetupSettings{}, nil
		}
		return SetupSettings{}, err
	}

	var settings SetupSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return SetupSettings{}, err
	}
	return settings, nil
}

func saveSetupSettings(configDir string, settings SetupSettings) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(setupPath(configDir), data, 0644)
}

func secureTokenPath(configDir string) string {
	return filepath.Join(configDir, "access_token")
}

func saveSecureToken(configDir, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}
	// Owner read/write only.
	return os.WriteFile(secureTokenPath(configDir), []byte(strings.TrimSpace(token)+"\n"), 0600)
}

func loadSecureToken(configDir string) (string, error) {
	data, err := os.ReadFile(secureTokenPath(configDir))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func shouldRunSetup(settings SetupSettings, config *Config) bool {
	if settings.Completed {
		return false
	}
	// Full config from flags or the environment skips setup entirely.
	if config.APIBaseURL != "" && config.Token != "" {
		return false
	}
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

type setupStep int

const (
	stepURL setupStep = iota
	stepToken
	stepDone
)

type setupModel struct {
	step          setupStep
	urlInput      textinput.Model
	tokenInput    textinput.Model
	settings      SetupSettings
	capturedToken string
	status        string
	errText       string
	width         int
	height        int
	cancelled     bool
}

var (
	obColorSurface = lipgloss.Color("#22222E")
	obColorMuted   = lipgloss.Color("#7C7E92")
	obColorText    = lipgloss.Color("#D8DAE8")
	obColorAccent  = lipgloss.Color("#9D8CD6")
	obColorDanger  = lipgloss.Color("#f38ba8")

	obTitleStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true)

	obHeaderStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(obColorMuted)

	obTabsStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(obColorMuted)

	obTabInactive = lipgloss.NewStyle().
			Foreground(obColorMuted).
			Padding(0, 2)

	obTabActive = lipgloss.NewStyle().
			Foreground(obColorText).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	obPanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(obColorMuted).
			Padding(1, 2)

	obInputStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(obColorAccent).
			Padding(0, 1)

	obLabelStyle = lipgloss.NewStyle().
			Foreground(obColorAccent).
			Bold(true)

	obMutedStyle = lipgloss.NewStyle().
			Foreground(obColorMuted)

	obWarnStyle = lipgloss.NewStyle().
			Foreground(obColorDanger)

	obFooterStyle = lipgloss.NewStyle().
			Foreground(obColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(obColorMuted)
)

func newSetupModel(existingURL, existingToken string) setupModel {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://api.tableyeah.example"
	urlInput.CharLimit = 200
	urlInput.Prompt = "url> "
	urlInput.SetValue(strings.TrimSpace(existingURL))
	urlInput.TextStyle = lipgloss.NewStyle().Foreground(obColorText)
	urlInput.PlaceholderStyle = lipgloss.NewStyle().Foreground(obColorMuted)
	urlInput.Cursor.Style = lipgloss.NewStyle().Foreground(obColorText).Background(obColorAccent)
	urlInput.Focus()

	tokenInput := textinput.New()
	tokenInput.Placeholder = "Paste staff access token here"
	tokenInput.CharLimit = 2048
	tokenInput.Prompt = "token> "
	tokenInput.SetValue(strings.TrimSpace(existingToken))
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.TextStyle = lipgloss.NewStyle().Foreground(obColorText)
	tokenInput.PlaceholderStyle = lipgloss.NewStyle().Foreground(obColorMuted)

	return setupModel{
		step:       stepURL,
		urlInput:   urlInput,
		tokenInput: tokenInput,
		settings: SetupSettings{
			Completed: true,
		},
	}
}

func (m setupModel) Init() tea.Cmd { return nil }

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			m.status = "Setup cancelled."
			m.step = stepDone
			return m, tea.Quit
		}

		switch m.step {
		case stepURL:
			if msg.String() == "enter" {
				raw := strings.TrimSpace(m.urlInput.Value())
				u, err := url.Parse(raw)
				if raw == "" || err != nil || u.Scheme == "" || u.Host == "" {
					m.errText = "Enter a full URL including the scheme, like https://api.tableyeah.example"
					return m, nil
				}
				m.errText = ""
				m.settings.APIBaseURL = strings.TrimRight(raw, "/")
				m.step = stepToken
				m.urlInput.Blur()
				m.tokenInput.Focus()
				return m, nil
			}
			var cmd tea.Cmd
			m.urlInput, cmd = m.urlInput.Update(msg)
			return m, cmd
		case stepToken:
			if msg.String() == "enter" {
				token := strings.TrimSpace(m.tokenInput.Value())
				if token == "" {
					m.errText = "An access token is required"
					return m, nil
				}
				m.errText = ""
				m.capturedToken = token
				m.status = "Setup complete."
				m.step = stepDone
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tokenInput, cmd = m.tokenInput.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m setupModel) View() string {
	width := m.width
	height := m.height
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 28
	}

	header := m.renderHeader(width)
	tabs := m.renderTabs(width)
	footer := m.renderFooter(width)

	contentHeight := height - 6
	if contentHeight < 8 {
		contentHeight = 8
	}
	content := m.renderContent(width, contentHeight)
	ui := lipgloss.JoinVertical(lipgloss.Left, header, tabs, content, footer)

	return lipgloss.NewStyle().
		Foreground(obColorText).
		Width(width).
		Height(height).
		Render(ui)
}

func (m setupModel) renderHeader(width int) string {
	left := "  " + obTitleStyle.Render("tableyeah") + " " + obMutedStyle.Render("› Setup")
	right := obMutedStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return obHeaderStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

func (m setupModel) renderTabs(width int) string {
	urlTab := obTabInactive.Render("API Server")
	tokenTab := obTabInactive.Render("Access Token")
	if m.step == stepURL {
		urlTab = obTabActive.Render("API Server")
	}
	if m.step == stepToken {
		tokenTab = obTabActive.Render("Access Token")
	}
	return obTabsStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Left, "  ", urlTab, tokenTab))
}

func (m setupModel) renderFooter(width int) string {
	switch m.step {
	case stepURL, stepToken:
		return obFooterStyle.Width(width).Render("enter continue  ctrl+c cancel")
	default:
		return obFooterStyle.Width(width).Render("Setup complete")
	}
}

func (m setupModel) renderContent(width, height int) string {
	cardWidth := min(92, width-6)
	if cardWidth < 40 {
		cardWidth = width - 2
	}

	var body string
	switch m.step {
	case stepURL:
		input := obInputStyle.Width(max(30, cardWidth-14)).Render(m.urlInput.View())
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			obLabelStyle.Render("Which API server does this venue use?"),
			"",
			obMutedStyle.Render("Your manager can find this under Venue Settings › Devices."),
			"",
			obLabelStyle.Render("API Base URL"),
			input,
		)
	case stepToken:
		input := obInputStyle.Width(max(30, cardWidth-14)).Render(m.tokenInput.View())
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			obLabelStyle.Render("Sign this device in"),
			"",
			obMutedStyle.Render("1) Open Venue Settings › Devices on another signed-in device"),
			obMutedStyle.Render("2) Generate a device token"),
			obMutedStyle.Render("3) Paste it below"),
			"",
			obLabelStyle.Render("Access Token"),
			input,
		)
	default:
		msg := obMutedStyle.Render(m.status)
		if m.cancelled {
			msg = obWarnStyle.Render(m.status)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, obLabelStyle.Render("Setup"), "", msg)
	}

	if m.errText != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", obWarnStyle.Render(m.errText))
	}

	card := obPanelStyle.Width(cardWidth).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, card)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func runSetup(configDir, existingURL, existingToken string) (SetupSettings, error) {
	model := newSetupModel(existingURL, existingToken)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := prog.Run()
	if err != nil {
		return SetupSettings{}, fmt.Errorf("setup tui failed: %w", err)
	}
	m, ok := finalModel.(setupModel)
	if !ok {
		return SetupSettings{}, fmt.Errorf("unexpected setup model type")
	}
	if m.cancelled {
		return SetupSettings{}, fmt.Errorf("setup cancelled")
	}
	if strings.TrimSpace(m.capturedToken) != "" {
		if err := saveSecureToken(configDir, m.capturedToken); err != nil {
			return SetupSettings{}, err
		}
	}
	if err := saveSetupSettings(configDir, m.settings); err != nil {
		return SetupSettings{}, err
	}
	return m.settings, nil
}
