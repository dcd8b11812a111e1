package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/KyleKincer/tableyeah-foh/internal/api"
	"github.com/KyleKincer/tableyeah-foh/internal/cache"
	"github.com/KyleKincer/tableyeah-foh/internal/floorplan"
	"github.com/KyleKincer/tableyeah-foh/internal/haptics"
	"github.com/KyleKincer/tableyeah-foh/internal/model"
	"github.com/KyleKincer/tableyeah-foh/internal/util"
)

const requestTimeout = 10 * time.Second

// Model is the root Bubble Tea model.
type Model struct {
	api    *api.Client
	cache  *cache.Store
	logger *zap.Logger
	staff  *api.StaffInfo

	screen model.Screen
	input  model.InputMode

	width  int
	height int

	error       string
	info        string
	showingHelp bool
	columnJump  bool
	pendingG    bool
	ticking     bool

	floor     *FloorModel
	waitlist  *WaitlistModel
	guests    *GuestsModel
	events    *EventsModel
	giftCards *GiftCardsModel
	settings  *SettingsModel

	search    textinput.Model
	searching bool

	keys  KeyMap
	prefs UIPreferences
}

// New creates the root model. The floor session gets terminal haptics;
// everything durable flows through the API client with the cache as the
// offline fallback.
func New(client *api.Client, store *cache.Store, logger *zap.Logger, staff *api.StaffInfo, baseURL, version string) Model {
	date := util.TodayISO(time.Now())
	session := floorplan.NewSession(haptics.NewTerminal())

	search := textinput.New()
	search.Placeholder = "name, phone, or email"
	search.CharLimit = 64
	search.Width = 32

	prefs := loadUIPreferences()
	screen := model.Screen(prefs.LastScreen)
	if screen < model.ScreenFloor || screen > model.ScreenSettings {
		screen = model.ScreenFloor
	}

	return Model{
		ticking:  true,
		api:      client,
		cache:    store,
		logger:   logger,
		staff:    staff,
		screen:   screen,
		floor:    NewFloorModel(session, date, nil),
		settings: NewSettingsModel(staff, client.Venue(), baseURL, version, nil),
		search:   search,
		keys:     DefaultKeyMap(),
		prefs:    prefs,
	}
}

// Init kicks off the floor loads and the turn-time ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadFloorPlanCmd(m.api, m.cache, m.floor.Date()),
		loadServersCmd(m.api, m.cache),
		loadAssignmentsCmd(m.api, m.cache, m.floor.Date()),
		m.loadScreenCmd(m.screen),
		turnTickCmd(),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		m.logger.Warn("operation failed", zap.Error(msg.Err))
		return m, nil

	case model.FloorPlanLoadedMsg:
		m.floor.SetPlan(msg.Plan, msg.FetchedAt, msg.FromCache)
		m.settings.SetFreshness(msg.FetchedAt, msg.FromCache)
		m.error = ""
		return m, nil

	case model.ServersLoadedMsg:
		m.floor.SetServers(msg.Servers)
		m.settings.SetServers(msg.Servers)
		return m, nil

	case model.AssignmentsLoadedMsg:
		m.floor.Session().SetConfirmed(msg.Assignments)
		return m, nil

	case model.AssignmentsSavedMsg:
		m.floor.Session().CompleteSave()
		m.floor.Session().SetConfirmed(msg.Assignments)
		m.info = "Assignments saved"
		m.error = ""
		return m, nil

	case model.AssignmentsSaveFailedMsg:
		// Pending edits survive so the operator can retry the save.
		m.error = "Save failed: " + msg.Err.Error()
		m.logger.Warn("assignment save failed", zap.Error(msg.Err))
		return m, nil

	case model.WaitlistLoadedMsg:
		m.waitlist = NewWaitlistModel(msg.Entries, nil)
		m.error = ""
		return m, nil

	case model.PartySeatedMsg:
		m.info = fmt.Sprintf("Seated party of %d", msg.Covers)
		m.error = ""
		cmds := []tea.Cmd{loadFloorPlanCmd(m.api, m.cache, m.floor.Date())}
		if msg.WaitlistEntryID != "" {
			cmds = append(cmds, loadWaitlistCmd(m.api, m.cache))
		}
		return m, tea.Batch(cmds...)

	case model.SeatFailedMsg:
		m.error = "Seating failed: " + msg.Err.Error()
		m.logger.Warn("seat failed", zap.Error(msg.Err))
		return m, nil

	case model.GuestsLoadedMsg:
		m.guests = NewGuestsModel(msg.Guests, msg.Query)
		m.guests.ApplyPrefs(m.prefs.Guests)
		m.error = ""
		return m, nil

	case model.EventsLoadedMsg:
		m.events = NewEventsModel(msg.Events, nil)
		m.error = ""
		return m, nil

	case model.GiftCardsLoadedMsg:
		m.giftCards = NewGiftCardsModel(msg.Cards)
		m.error = ""
		return m, nil

	case model.TurnTickMsg:
		// The re-render picks up fresh elapsed times. The tick only stays
		// armed while the floor is visible; switching back restarts it.
		if m.screen != model.ScreenFloor {
			m.ticking = false
			return m, nil
		}
		return m, turnTickCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.persistPrefs()
		return m, tea.Quit
	}

	if m.input == model.InputPrompt {
		return m.handlePromptKey(msg)
	}

	if m.columnJump {
		switch msg.String() {
		case "esc":
			m.columnJump = false
			m.info = ""
			return m, nil
		}
		if n, err := strconv.Atoi(msg.String()); err == nil {
			table := m.currentTable()
			if table != nil && table.JumpToColumn(n) {
				m.columnJump = false
				m.info = fmt.Sprintf("Jumped to column %d", n)
				m.persistGuestPrefs()
				return m, nil
			}
			m.info = fmt.Sprintf("Column %d unavailable", n)
			return m, nil
		}
	}

	if msg.String() == "?" {
		m.showingHelp = !m.showingHelp
		return m, nil
	}
	if m.showingHelp {
		if msg.String() == "esc" || msg.String() == "?" {
			m.showingHelp = false
		}
		return m, nil
	}

	// Screen switching, except where the floor canvas owns digit keys for
	// server picking.
	if m.floor.Session().Mode() != floorplan.ModeAssignServers || m.screen != model.ScreenFloor {
		if target, ok := screenForDigit(msg.String()); ok {
			return m.switchScreen(target)
		}
	}

	switch m.screen {
	case model.ScreenFloor:
		return m.handleFloorKey(msg)
	case model.ScreenWaitlist:
		return m.handleWaitlistKey(msg)
	case model.ScreenGuests:
		return m.handleGuestsKey(msg)
	case model.ScreenEvents:
		return m.handleEventsKey(msg)
	case model.ScreenGiftCards:
		return m.handleGiftCardsKey(msg)
	default:
		return m.handleSettingsKey(msg)
	}
}

func screenForDigit(key string) (model.Screen, bool) {
	switch key {
	case "1":
		return model.ScreenFloor, true
	case "2":
		return model.ScreenWaitlist, true
	case "3":
		return model.ScreenGuests, true
	case "4":
		return model.ScreenEvents, true
	case "5":
		return model.ScreenGiftCards, true
	case "6":
		return model.ScreenSettings, true
	}
	return 0, false
}

func (m Model) switchScreen(target model.Screen) (tea.Model, tea.Cmd) {
	if m.screen == target {
		return m, nil
	}
	m.screen = target
	m.info = ""
	m.pendingG = false
	m.columnJump = false

	cmds := []tea.Cmd{m.loadScreenCmd(target)}
	if target == model.ScreenFloor && !m.ticking {
		m.ticking = true
		cmds = append(cmds, turnTickCmd())
	}
	return m, tea.Batch(cmds...)
}

// loadScreenCmd returns the load command for screens that fetch on entry.
// The floor's data loads at startup and refreshes on demand.
func (m Model) loadScreenCmd(screen model.Screen) tea.Cmd {
	switch screen {
	case model.ScreenWaitlist:
		return loadWaitlistCmd(m.api, m.cache)
	case model.ScreenGuests:
		query := ""
		if m.guests != nil {
			query = m.guests.Query()
		}
		return loadGuestsCmd(m.api, m.cache, query)
	case model.ScreenEvents:
		return loadEventsCmd(m.api, m.cache)
	case model.ScreenGiftCards:
		return loadGiftCardsCmd(m.api, m.cache)
	}
	return nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.input = model.InputNav
			query := strings.TrimSpace(m.search.Value())
			m.search.Blur()
			return m, loadGuestsCmd(m.api, m.cache, query)
		case "esc":
			m.searching = false
			m.input = model.InputNav
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	// Walk-in covers prompt on the floor screen.
	switch msg.String() {
	case "enter":
		if m.floor.ConfirmPrompt() {
			m.input = model.InputNav
			m.info = fmt.Sprintf("Walk-in party of %d: tap a table", m.floor.Session().WalkInCovers())
		} else {
			m.error = "Enter a party size greater than zero"
		}
		return m, nil
	case "esc":
		m.floor.CancelPrompt()
		m.input = model.InputNav
		return m, nil
	}
	m.floor.UpdatePrompt(msg)
	return m, nil
}

func (m Model) handleFloorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.floor.Session()

	// Server picking by number while assigning.
	if session.Mode() == floorplan.ModeAssignServers {
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= 9 {
			if !m.floor.SelectServerByIndex(n) {
				m.info = fmt.Sprintf("No server %d", n)
			}
			return m, nil
		}
	}

	switch msg.String() {
	case "q":
		if session.Mode() == floorplan.ModeNormal {
			m.persistPrefs()
			return m, tea.Quit
		}
	case "esc":
		if session.Mode() != floorplan.ModeNormal {
			session.Cancel()
			m.info = ""
			return m, nil
		}
		m.info = ""
		m.error = ""
		return m, nil
	case "tab":
		m.floor.FocusNext()
		return m, nil
	case "shift+tab":
		m.floor.FocusPrev()
		return m, nil
	case "enter":
		return m.applyFloorCommand(m.floor.TapFocused())
	case "o":
		return m.applyFloorCommand(m.floor.HoldFocused())
	case "w":
		if session.Mode() == floorplan.ModeNormal {
			m.floor.StartWalkInPrompt()
			m.input = model.InputPrompt
		}
		return m, nil
	case "a":
		if session.Mode() == floorplan.ModeNormal {
			session.EnterAssignServers()
			m.info = "Pick a server, then tap tables. s saves."
		}
		return m, nil
	case "s":
		if session.Mode() == floorplan.ModeAssignServers {
			return m.applyFloorCommand(session.Save())
		}
		return m, nil
	case "r":
		return m, tea.Batch(
			loadFloorPlanCmd(m.api, m.cache, m.floor.Date()),
			loadServersCmd(m.api, m.cache),
			loadAssignmentsCmd(m.api, m.cache, m.floor.Date()),
		)
	}
	return m, nil
}

// applyFloorCommand turns a session command into I/O or feedback. The
// session decides what an interaction means; this is where it takes effect.
func (m Model) applyFloorCommand(cmd floorplan.Command) (tea.Model, tea.Cmd) {
	switch cmd.Kind {
	case floorplan.CmdSeatWalkIn:
		m.info = "Seating party..."
		return m, seatWalkInCmd(m.api, cmd.TableID, cmd.Covers)

	case floorplan.CmdSeatWaitlist:
		m.info = "Seating party..."
		return m, seatWaitlistCmd(m.api, cmd.WaitlistEntryID, cmd.TableID, cmd.Covers)

	case floorplan.CmdSaveAssignments:
		m.info = "Saving assignments..."
		return m, saveAssignmentsCmd(m.api, m.cache, m.floor.Date(), cmd.Assignments)

	case floorplan.CmdTablePressed, floorplan.CmdTableHeld:
		if t := m.floor.TableByID(cmd.TableID); t != nil {
			m.info = tableSummary(*t)
		}
		return m, nil

	case floorplan.CmdBackgroundPressed:
		m.info = ""
		m.error = ""
		return m, nil
	}
	return m, nil
}

func tableSummary(t model.Table) string {
	label := fmt.Sprintf("Table %s · %s · %s", t.Number, util.FormatCapacity(t.MinCovers, t.MaxCovers), t.Status)
	if t.Current != nil {
		label += fmt.Sprintf(" · %s, seated %s", util.FormatCovers(t.Current.Covers), util.FormatClock(t.Current.SeatedAt.Local()))
	}
	return label
}

func (m Model) handleWaitlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.persistPrefs()
		return m, tea.Quit
	case "j", "down":
		if m.waitlist != nil {
			m.waitlist.CursorDown()
		}
		m.pendingG = false
	case "k", "up":
		if m.waitlist != nil {
			m.waitlist.CursorUp()
		}
		m.pendingG = false
	case "g":
		if m.pendingG {
			if m.waitlist != nil {
				m.waitlist.JumpToTop()
			}
			m.pendingG = false
		} else {
			m.pendingG = true
		}
	case "G":
		if m.waitlist != nil {
			m.waitlist.JumpToBottom()
		}
		m.pendingG = false
	case "s":
		if m.waitlist == nil {
			return m, nil
		}
		entry := m.waitlist.SelectedEntry()
		if entry == nil {
			return m, nil
		}
		m.floor.Session().EnterSeatWaitlist(*entry)
		m.screen = model.ScreenFloor
		m.info = fmt.Sprintf("Seating %s (%s): tap an open table", entry.Name, util.FormatCovers(entry.Covers))
		return m, nil
	case "r":
		return m, loadWaitlistCmd(m.api, m.cache)
	case "esc":
		m.info = ""
		m.error = ""
	}
	return m, nil
}

// currentTable returns the columned table on screen, if any. Only the guest
// book has one today, but the column keys route through the interface so a
// future columned screen picks them up for free.
func (m *Model) currentTable() tableController {
	if m.screen == model.ScreenGuests && m.guests != nil {
		return m.guests
	}
	return nil
}

func (m Model) handleGuestsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.guests == nil {
		if msg.String() == "q" {
			m.persistPrefs()
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.persistPrefs()
		return m, tea.Quit
	case "j", "down":
		m.guests.MoveDown()
		m.pendingG = false
	case "k", "up":
		m.guests.MoveUp()
		m.pendingG = false
	case "g":
		if m.pendingG {
			m.guests.JumpToTop()
			m.pendingG = false
		} else {
			m.pendingG = true
		}
	case "G":
		m.guests.JumpToBottom()
		m.pendingG = false
	case "ctrl+d":
		m.guests.HalfPageDown(m.contentHeight() / 2)
	case "ctrl+u":
		m.guests.HalfPageUp(m.contentHeight() / 2)
	case "tab":
		m.currentTable().NextColumn()
		m.persistGuestPrefs()
	case "shift+tab":
		m.currentTable().PrevColumn()
		m.persistGuestPrefs()
	case "s":
		m.currentTable().SortActiveColumn(false)
		m.persistGuestPrefs()
	case "S":
		m.currentTable().SortActiveColumn(true)
		m.persistGuestPrefs()
	case "c":
		if !m.currentTable().HideActiveColumn() {
			m.info = "Cannot hide the last visible column"
		} else {
			m.persistGuestPrefs()
		}
	case "C":
		m.currentTable().ShowAllColumns()
		m.persistGuestPrefs()
	case "n":
		if m.currentTable().FilterBySelectedValue() {
			m.info = "Filtered by selected value"
		}
	case "N":
		if m.currentTable().ClearFilter() {
			m.info = "Filter cleared"
		}
	case "/":
		m.columnJump = true
		m.info = "Jump to column: press 1-9"
	case "f":
		m.searching = true
		m.input = model.InputPrompt
		m.search.SetValue(m.guests.Query())
		m.search.Focus()
	case "r":
		return m, loadGuestsCmd(m.api, m.cache, m.guests.Query())
	case "esc":
		m.info = ""
		m.error = ""
	}
	return m, nil
}

func (m Model) handleEventsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.persistPrefs()
		return m, tea.Quit
	case "j", "down":
		if m.events != nil {
			m.events.CursorDown()
		}
		m.pendingG = false
	case "k", "up":
		if m.events != nil {
			m.events.CursorUp()
		}
		m.pendingG = false
	case "g":
		if m.pendingG {
			if m.events != nil {
				m.events.JumpToTop()
			}
			m.pendingG = false
		} else {
			m.pendingG = true
		}
	case "G":
		if m.events != nil {
			m.events.JumpToBottom()
		}
		m.pendingG = false
	case "r":
		return m, loadEventsCmd(m.api, m.cache)
	case "esc":
		m.info = ""
		m.error = ""
	}
	return m, nil
}

func (m Model) handleGiftCardsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.persistPrefs()
		return m, tea.Quit
	case "j", "down":
		if m.giftCards != nil {
			m.giftCards.CursorDown()
		}
		m.pendingG = false
	case "k", "up":
		if m.giftCards != nil {
			m.giftCards.CursorUp()
		}
		m.pendingG = false
	case "g":
		if m.pendingG {
			if m.giftCards != nil {
				m.giftCards.JumpToTop()
			}
			m.pendingG = false
		} else {
			m.pendingG = true
		}
	case "G":
		if m.giftCards != nil {
			m.giftCards.JumpToBottom()
		}
		m.pendingG = false
	case "r":
		return m, loadGiftCardsCmd(m.api, m.cache)
	case "esc":
		m.info = ""
		m.error = ""
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.persistPrefs()
		return m, tea.Quit
	case "r":
		return m, loadServersCmd(m.api, m.cache)
	case "esc":
		m.info = ""
		m.error = ""
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen != model.ScreenFloor || m.showingHelp || m.input == model.InputPrompt {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	y := msg.Y - m.contentTop()
	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.applyFloorCommand(m.floor.Click(msg.X, y))
	case tea.MouseButtonRight:
		return m.applyFloorCommand(m.floor.RightClick(msg.X, y))
	}
	return m, nil
}

// contentTop is the number of rows above the screen content: header, tabs,
// and any banners. Mouse coordinates are translated by it before hit tests.
func (m Model) contentTop() int {
	top := 2 + 2 // header with its border, tab bar with its border
	if m.error != "" {
		top++
	}
	if m.info != "" {
		top++
	}
	return top
}

func (m Model) contentHeight() int {
	h := m.height - m.contentTop() - 1 // footer
	if h < 0 {
		h = 0
	}
	return h
}

func (m *Model) persistGuestPrefs() {
	if m.guests == nil {
		return
	}
	m.prefs.Guests = m.guests.Prefs()
	if err := saveUIPreferences(m.prefs); err != nil {
		m.logger.Warn("failed to save preferences", zap.Error(err))
	}
}

func (m *Model) persistPrefs() {
	if m.guests != nil {
		m.prefs.Guests = m.guests.Prefs()
	}
	m.prefs.LastScreen = int(m.screen)
	if err := saveUIPreferences(m.prefs); err != nil {
		m.logger.Warn("failed to save preferences", zap.Error(err))
	}
}

// View renders the app.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	contentHeight := m.contentHeight()
	var content string

	switch m.screen {
	case model.ScreenFloor:
		content = m.floor.View(m.width, contentHeight)
	case model.ScreenWaitlist:
		if m.waitlist != nil {
			content = m.waitlist.View(m.width, contentHeight)
		}
	case model.ScreenGuests:
		if m.searching {
			prompt := LabelStyle.Render("Find guest: ") + m.search.View()
			rest := ""
			if m.guests != nil {
				rest = m.guests.View(m.width, contentHeight-2)
			}
			content = lipgloss.JoinVertical(lipgloss.Left, prompt, "", rest)
		} else if m.guests != nil {
			content = m.guests.View(m.width, contentHeight)
		}
	case model.ScreenEvents:
		if m.events != nil {
			content = m.events.View(m.width, contentHeight)
		}
	case model.ScreenGiftCards:
		if m.giftCards != nil {
			content = m.giftCards.View(m.width, contentHeight)
		}
	case model.ScreenSettings:
		content = m.settings.View(m.width, contentHeight)
	}

	header := m.renderHeader()
	tabs := renderTabs(m.screen, m.width)
	footer := RenderHelp(m.screen, m.floor.Session().Mode(), m.input, m.keys, m.width)

	content = lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(content)

	parts := []string{header, tabs}
	if m.error != "" {
		parts = append(parts, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		parts = append(parts, SuccessStyle.Width(m.width).Render(m.info))
	}
	parts = append(parts, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderHeader() string {
	title := HeaderStyle.Render("tableyeah")
	venue := BreadcrumbStyle.Render(" › ") + BreadcrumbActiveStyle.Render(m.api.Venue())
	left := "  " + title + venue

	right := BreadcrumbStyle.Render(time.Now().Format("Mon 02 Jan")) + "  "

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

func renderTabs(screen model.Screen, width int) string {
	tabs := []struct {
		name   string
		screen model.Screen
	}{
		{"Floor", model.ScreenFloor},
		{"Waitlist", model.ScreenWaitlist},
		{"Guests", model.ScreenGuests},
		{"Events", model.ScreenEvents},
		{"Gift Cards", model.ScreenGiftCards},
		{"Settings", model.ScreenSettings},
	}

	var tabStrings []string
	for i, tab := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(fmt.Sprintf("%d %s", i+1, tab.name)))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

// Commands

func turnTickCmd() tea.Cmd {
	return tea.Tick(floorplan.RefreshInterval, func(t time.Time) tea.Msg {
		return model.TurnTickMsg{At: t}
	})
}

// loadFloorPlanCmd fetches the floor snapshot, falling back to the cached
// copy when the API is unreachable.
func loadFloorPlanCmd(client *api.Client, store *cache.Store, date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		plan, err := client.FloorPlan(ctx, date)
		if err == nil {
			now := time.Now()
			_ = store.Put(client.Venue(), cache.KindFloorPlan, plan, now)
			return model.FloorPlanLoadedMsg{Date: date, Plan: plan, FetchedAt: now}
		}

		var cached model.FloorPlan
		fetchedAt, cacheErr := store.Get(client.Venue(), cache.KindFloorPlan, &cached)
		if cacheErr != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load floor plan: %w", err)}
		}
		return model.FloorPlanLoadedMsg{Date: date, Plan: cached, FetchedAt: fetchedAt, FromCache: true}
	}
}

func loadServersCmd(client *api.Client, store *cache.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		servers, err := client.Servers(ctx)
		if err == nil {
			_ = store.Put(client.Venue(), cache.KindServers, servers, time.Now())
			return model.ServersLoadedMsg{Servers: servers}
		}

		var cached []model.Server
		if _, cacheErr := store.Get(client.Venue(), cache.KindServers, &cached); cacheErr != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load servers: %w", err)}
		}
		return model.ServersLoadedMsg{Servers: cached}
	}
}

func loadAssignmentsCmd(client *api.Client, store *cache.Store, date string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		assignments, err := client.Assignments(ctx, date)
		if err == nil {
			_ = store.Put(client.Venue(), cache.KindAssignments, assignments, time.Now())
			return model.AssignmentsLoadedMsg{Date: date, Assignments: assignments}
		}

		var cached map[string]model.Assignment
		if _, cacheErr := store.Get(client.Venue(), cache.KindAssignments, &cached); cacheErr != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load assignments: %w", err)}
		}
		return model.AssignmentsLoadedMsg{Date: date, Assignments: cached}
	}
}

// saveAssignmentsCmd persists the pending assignment map. Failure keeps the
// session in assign mode with its edits intact.
func saveAssignmentsCmd(client *api.Client, store *cache.Store, date string, assignments map[string]model.Assignment) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.SaveAssignments(ctx, date, assignments); err != nil {
			return model.AssignmentsSaveFailedMsg{Err: err}
		}
		_ = store.Put(client.Venue(), cache.KindAssignments, assignments, time.Now())
		return model.AssignmentsSavedMsg{Date: date, Assignments: assignments}
	}
}

func loadWaitlistCmd(client *api.Client, store *cache.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		entries, err := client.Waitlist(ctx)
		if err == nil {
			_ = store.Put(client.Venue(), cache.KindWaitlist, entries, time.Now())
			return model.WaitlistLoadedMsg{Entries: entries}
		}

		var cached []model.WaitlistEntry
		if _, cacheErr := store.Get(client.Venue(), cache.KindWaitlist, &cached); cacheErr != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load waitlist: %w", err)}
		}
		return model.WaitlistLoadedMsg{Entries: cached}
	}
}

func seatWalkInCmd(client *api.Client, tableID string, covers int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.SeatWalkIn(ctx, tableID, covers); err != nil {
			return model.SeatFailedMsg{Err: err}
		}
		return model.PartySeatedMsg{TableID: tableID, Covers: covers}
	}
}

func seatWaitlistCmd(client *api.Client, entryID, tableID string, covers int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.SeatWaitlistEntry(ctx, entryID, tableID); err != nil {
			return model.SeatFailedMsg{Err: err}
		}
		return model.PartySeatedMsg{TableID: tableID, Covers: covers, WaitlistEntryID: entryID}
	}
}

func loadGuestsCmd(client *api.Client, store *cache.Store, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		guests, err := client.Guests(ctx, query)
		if err == nil {
			if query == "" {
				_ = store.Put(client.Venue(), cache.KindGuests, guests, time.Now())
			}
			return model.GuestsLoadedMsg{Guests: guests, Query: query}
		}

		// Only the unfiltered listing is cached; a search needs the API.
		if query == "" {
			var cached []model.Guest
			if _, cacheErr := store.Get(client.Venue(), cache.KindGuests, &cached); cacheErr == nil {
				return model.GuestsLoadedMsg{Guests: cached}
			}
		}
		return model.ErrorMsg{Err: fmt.Errorf("failed to load guests: %w", err)}
	}
}

func loadEventsCmd(client *api.Client, store *cache.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		events, err := client.Events(ctx)
		if err == nil {
			_ = store.Put(client.Venue(), cache.KindEvents, events, time.Now())
			return model.EventsLoadedMsg{Events: events}
		}

		var cached []model.Event
		if _, cacheErr := store.Get(client.Venue(), cache.KindEvents, &cached); cacheErr != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load events: %w", err)}
		}
		return model.EventsLoadedMsg{Events: cached}
	}
}

func loadGiftCardsCmd(client *api.Client, store *cache.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		cards, err := client.GiftCards(ctx)
		if err == nil {
			_ = store.Put(client.Venue(), cache.KindGiftCards, cards, time.Now())
			return model.GiftCardsLoadedMsg{Cards: cards}
		}

		var cached []model.GiftCard
		if _, cacheErr := store.Get(client.Venue(), cache.KindGiftCards, &cached); cacheErr != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load gift cards: %w", err)}
		}
		return model.GiftCardsLoadedMsg{Cards: cached}
	}
}
