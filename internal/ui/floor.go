package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KyleKincer/tableyeah-foh/internal/floorplan"
	"github.com/KyleKincer/tableyeah-foh/internal/model"
	"github.com/KyleKincer/tableyeah-foh/internal/util"
)

// Rows the floor screen reserves above the canvas: stats strip + mode line.
const canvasTop = 2

// Cell-grid minimum footprints. Terminal cells are coarse; anything smaller
// than this is unreadable and untappable.
var (
	tableCellMin   = floorplan.Size{W: 9, H: 6} // height in half-rows
	elementCellMin = floorplan.Size{W: 2, H: 2}
)

type cellRect struct {
	x, y, w, h int
}

func (r cellRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type tableHit struct {
	rect  cellRect
	index int // into positioned
}

// FloorModel is the floor-plan screen: the seating canvas plus the
// interaction-mode UI layered on it.
type FloorModel struct {
	date     string
	tables   []model.Table
	elements []model.Element
	servers  []model.Server
	session  *floorplan.Session

	positioned []int // indexes into tables, draw/focus order
	focus      int

	hits       []tableHit
	lastWidth  int
	lastHeight int

	prompt       textinput.Model
	promptActive bool

	fetchedAt time.Time
	fromCache bool
	now       func() time.Time
}

// NewFloorModel creates the floor screen for a service date.
func NewFloorModel(session *floorplan.Session, date string, now func() time.Time) *FloorModel {
	if now == nil {
		now = time.Now
	}
	prompt := textinput.New()
	prompt.Placeholder = "party size"
	prompt.CharLimit = 3
	prompt.Width = 12
	return &FloorModel{
		session: session,
		date:    date,
		prompt:  prompt,
		now:     now,
	}
}

// Session exposes the interaction session to the root model.
func (f *FloorModel) Session() *floorplan.Session { return f.session }

// Date returns the service date the screen is showing.
func (f *FloorModel) Date() string { return f.date }

// SetPlan replaces the floor snapshot.
func (f *FloorModel) SetPlan(plan model.FloorPlan, fetchedAt time.Time, fromCache bool) {
	f.tables = plan.Tables
	f.elements = append([]model.Element(nil), plan.Elements...)
	sort.SliceStable(f.elements, func(i, j int) bool {
		return f.elements[i].ZIndex < f.elements[j].ZIndex
	})
	f.fetchedAt = fetchedAt
	f.fromCache = fromCache

	f.positioned = f.positioned[:0]
	for i, t := range f.tables {
		if t.Geometry.Positioned() {
			f.positioned = append(f.positioned, i)
		}
	}
	// Reading order so tab cycles naturally.
	sort.SliceStable(f.positioned, func(a, b int) bool {
		ta, tb := f.tables[f.positioned[a]].Geometry, f.tables[f.positioned[b]].Geometry
		if *ta.PosY != *tb.PosY {
			return *ta.PosY < *tb.PosY
		}
		return *ta.PosX < *tb.PosX
	})
	if f.focus >= len(f.positioned) {
		f.focus = 0
	}
	f.hits = nil
}

// SetServers replaces the active server roster.
func (f *FloorModel) SetServers(servers []model.Server) {
	f.servers = f.servers[:0]
	for _, s := range servers {
		if s.Active {
			f.servers = append(f.servers, s)
		}
	}
}

// Servers returns the active roster.
func (f *FloorModel) Servers() []model.Server { return f.servers }

// FocusNext moves keyboard focus to the next positioned table.
func (f *FloorModel) FocusNext() {
	if len(f.positioned) == 0 {
		return
	}
	f.focus = (f.focus + 1) % len(f.positioned)
}

// FocusPrev moves keyboard focus to the previous positioned table.
func (f *FloorModel) FocusPrev() {
	if len(f.positioned) == 0 {
		return
	}
	f.focus--
	if f.focus < 0 {
		f.focus = len(f.positioned) - 1
	}
}

// FocusedTable returns the table under keyboard focus, or nil.
func (f *FloorModel) FocusedTable() *model.Table {
	if len(f.positioned) == 0 {
		return nil
	}
	return &f.tables[f.positioned[f.focus]]
}

// TableByID returns the table with the given ID, or nil.
func (f *FloorModel) TableByID(id string) *model.Table {
	for i := range f.tables {
		if f.tables[i].ID == id {
			return &f.tables[i]
		}
	}
	return nil
}

// TapFocused taps the focused table through the session.
func (f *FloorModel) TapFocused() floorplan.Command {
	t := f.FocusedTable()
	if t == nil {
		return floorplan.Command{Kind: floorplan.CmdNone}
	}
	return f.session.TapTable(*t)
}

// HoldFocused long-presses the focused table.
func (f *FloorModel) HoldFocused() floorplan.Command {
	t := f.FocusedTable()
	if t == nil {
		return floorplan.Command{Kind: floorplan.CmdNone}
	}
	return f.session.HoldTable(*t)
}

// TableAt hit-tests canvas-local coordinates against the rects of the last
// render. Tables draw above elements, and later tables above earlier ones,
// so the scan runs back to front.
func (f *FloorModel) TableAt(x, y int) *model.Table {
	for i := len(f.hits) - 1; i >= 0; i-- {
		if f.hits[i].rect.contains(x, y) {
			return &f.tables[f.positioned[f.hits[i].index]]
		}
	}
	return nil
}

// Click dispatches a tap at floor-local coordinates.
func (f *FloorModel) Click(x, y int) floorplan.Command {
	t := f.TableAt(x, y-canvasTop)
	if t == nil {
		return f.session.TapBackground()
	}
	for i, idx := range f.positioned {
		if f.tables[idx].ID == t.ID {
			f.focus = i
			break
		}
	}
	return f.session.TapTable(*t)
}

// RightClick dispatches a long-press at floor-local coordinates.
func (f *FloorModel) RightClick(x, y int) floorplan.Command {
	t := f.TableAt(x, y-canvasTop)
	if t == nil {
		return floorplan.Command{Kind: floorplan.CmdNone}
	}
	return f.session.HoldTable(*t)
}

// SelectServerByIndex toggles selection of the nth roster server (1-based).
func (f *FloorModel) SelectServerByIndex(n int) bool {
	if n < 1 || n > len(f.servers) {
		return false
	}
	f.session.SelectServer(f.servers[n-1])
	return true
}

// Walk-in party-size prompt.

// StartWalkInPrompt opens the party-size prompt.
func (f *FloorModel) StartWalkInPrompt() {
	f.promptActive = true
	f.prompt.SetValue("")
	f.prompt.Focus()
}

// PromptActive reports whether the prompt owns key input.
func (f *FloorModel) PromptActive() bool { return f.promptActive }

// UpdatePrompt feeds a message to the prompt input.
func (f *FloorModel) UpdatePrompt(msg tea.Msg) {
	f.prompt, _ = f.prompt.Update(msg)
}

// ConfirmPrompt parses the party size and enters walk-in mode.
// Returns false when the input is not a positive number.
func (f *FloorModel) ConfirmPrompt() bool {
	var covers int
	if _, err := fmt.Sscanf(strings.TrimSpace(f.prompt.Value()), "%d", &covers); err != nil || covers <= 0 {
		return false
	}
	f.promptActive = false
	f.prompt.Blur()
	f.session.EnterWalkIn(covers)
	return true
}

// CancelPrompt closes the prompt without entering a mode.
func (f *FloorModel) CancelPrompt() {
	f.promptActive = false
	f.prompt.Blur()
}

// View renders the floor screen and records the hit rects for this frame.
func (f *FloorModel) View(width, height int) string {
	f.lastWidth, f.lastHeight = width, height

	statsLine := f.renderStats(width)
	modeLine := f.renderModeLine(width)

	canvasHeight := height - canvasTop
	if canvasHeight < 1 {
		canvasHeight = 1
	}

	if !floorplan.HasPositionedTables(f.tables) {
		f.hits = nil
		empty := EmptyStateStyle.Render("NO FLOOR PLAN\n\nThis venue has no floor plan configured.\nTables can be placed in the venue editor.")
		return lipgloss.JoinVertical(lipgloss.Left, statsLine, modeLine,
			lipgloss.Place(width, canvasHeight, lipgloss.Center, lipgloss.Center, empty))
	}

	canvas := f.renderCanvas(width, canvasHeight)
	return lipgloss.JoinVertical(lipgloss.Left, statsLine, modeLine, canvas)
}

func (f *FloorModel) renderStats(width int) string {
	stats := floorplan.ComputeStats(f.tables)
	parts := []string{
		lipgloss.NewStyle().Foreground(ColorAvailable).Render("●") + fmt.Sprintf(" %d open", stats.Available),
		lipgloss.NewStyle().Foreground(ColorSeated).Render("●") + fmt.Sprintf(" %d seated · %d covers", stats.Seated, stats.SeatedCovers),
		lipgloss.NewStyle().Foreground(ColorUpcoming).Render("●") + fmt.Sprintf(" %d upcoming", stats.Upcoming),
	}
	line := StatStyle.Render(strings.Join(parts, "   "))

	var right string
	if f.fromCache {
		right = OfflineStyle.Render(fmt.Sprintf("offline · as of %s", util.FormatClock(f.fetchedAt.Local())))
	} else {
		right = BreadcrumbStyle.Render(f.date)
	}

	pad := width - lipgloss.Width(line) - lipgloss.Width(right) - 1
	if pad < 0 {
		pad = 0
	}
	return line + strings.Repeat(" ", pad) + right
}

func (f *FloorModel) renderModeLine(width int) string {
	if f.promptActive {
		return BannerStyle.Width(width).Render("WALK-IN · party size: " + f.prompt.View() + "  (enter to start, esc to cancel)")
	}

	switch f.session.Mode() {
	case floorplan.ModeWalkIn:
		return BannerStyle.Width(width).Render(fmt.Sprintf(
			"SEATING WALK-IN · %s — tap any table · esc to cancel",
			util.FormatCovers(f.session.WalkInCovers())))

	case floorplan.ModeSeatWaitlist:
		target := f.session.WaitlistTarget()
		return BannerStyle.Width(width).Render(fmt.Sprintf(
			"SEATING %s · %s — tap an open table · esc to cancel",
			strings.ToUpper(target.Name), util.FormatCovers(target.Covers)))

	case floorplan.ModeAssignServers:
		return f.renderServerPicker(width)

	default:
		return BreadcrumbStyle.Width(width).Padding(0, 1).Render(
			"w walk-in · a assign servers · tab cycle · enter tap")
	}
}

func (f *FloorModel) renderServerPicker(width int) string {
	var chips []string
	for i, s := range f.servers {
		chip := fmt.Sprintf("%d:%s", i+1, s.Name)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Padding(0, 1)
		if s.ID == f.session.SelectedServerID() {
			style = style.Reverse(true).Bold(true)
		}
		chips = append(chips, style.Render(chip))
	}

	save := "s save"
	if !f.session.CanSave() {
		save = BreadcrumbStyle.Render("s save")
	} else {
		save = SuccessStyle.Render(fmt.Sprintf("s save (%d)", f.session.PendingCount()))
	}

	line := LabelStyle.Render("ASSIGN") + " " + strings.Join(chips, "") + "  " + save + BreadcrumbStyle.Render("  esc cancel")
	return lipgloss.NewStyle().Width(width).Background(ColorSurface).Render(line)
}

// canvas cells

type cell struct {
	ch rune
	fg lipgloss.Color
	bg lipgloss.Color
}

func (f *FloorModel) renderCanvas(width, height int) string {
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' ', fg: ColorMuted, bg: ColorBase}
		}
	}

	// The mapper works in half-row units vertically so shapes keep their
	// aspect despite terminal cells being roughly twice as tall as wide.
	virtualH := float64(height * 2)

	for _, e := range f.elements {
		if !e.Active || !e.Geometry.Positioned() {
			continue
		}
		r, ok := floorplan.MapRect(float64(width), virtualH,
			*e.Geometry.PosX, *e.Geometry.PosY,
			e.Geometry.Width, e.Geometry.Height, e.Geometry.Rotation, elementCellMin)
		if !ok {
			continue
		}
		f.drawElement(grid, toCells(r), e)
	}

	f.hits = f.hits[:0]
	for i, idx := range f.positioned {
		t := f.tables[idx]
		r, ok := floorplan.MapRect(float64(width), virtualH,
			*t.Geometry.PosX, *t.Geometry.PosY,
			t.Geometry.Width, t.Geometry.Height, t.Geometry.Rotation, tableCellMin)
		if !ok {
			continue
		}
		rect := toCells(r)
		f.hits = append(f.hits, tableHit{rect: rect, index: i})
		f.drawTable(grid, rect, t, i == f.focus)
	}

	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			style := lipgloss.NewStyle().Foreground(c.fg).Background(c.bg)
			b.WriteString(style.Render(string(c.ch)))
		}
	}
	return b.String()
}

// toCells converts a virtual-unit rect (half-rows vertically) to cells.
func toCells(r floorplan.Rect) cellRect {
	x := int(r.X + 0.5)
	w := int(r.W + 0.5)
	y := int(r.Y/2 + 0.5)
	h := int(r.H/2 + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return cellRect{x: x, y: y, w: w, h: h}
}

func (f *FloorModel) drawElement(grid [][]cell, r cellRect, e model.Element) {
	fill := elementFill(e.Kind)
	fg := ColorMuted
	if e.Color != "" {
		fg = lipgloss.Color(e.Color)
	}
	fillRect(grid, r, cell{ch: fill, fg: fg, bg: ColorBase})

	label := e.Label
	if label == "" && e.Kind != model.ElementWall && e.Kind != model.ElementDivider {
		label = strings.ToUpper(string(e.Kind))
	}
	writeCentered(grid, r, 0, label, fg, ColorBase)
}

func elementFill(kind model.ElementKind) rune {
	switch kind {
	case model.ElementWall, model.ElementDivider:
		return '█'
	case model.ElementColumn:
		return '◯'
	case model.ElementPlant:
		return '♣'
	case model.ElementBar, model.ElementKitchen, model.ElementHostess:
		return '░'
	default:
		return '·'
	}
}

func (f *FloorModel) drawTable(grid [][]cell, r cellRect, t model.Table, focused bool) {
	bg := f.tableColor(t)
	fg := ColorBase
	if focused {
		// Focus swaps the fill so the active table reads at a glance.
		fg, bg = bg, ColorText
	}
	fillRect(grid, r, cell{ch: ' ', fg: fg, bg: bg})

	// Labels: table number on top, context on the line below.
	writeCentered(grid, r, 0, t.Number, fg, bg)
	writeCentered(grid, r, 1, f.tableDetail(t), fg, bg)

	// One server-assignment border color at a time, down the left edge.
	if a, ok := f.session.AssignmentFor(t.ID); ok {
		for y := r.y; y < r.y+r.h; y++ {
			putCell(grid, r.x, y, cell{ch: '▌', fg: lipgloss.Color(a.ServerColor), bg: bg})
		}
	}
}

// tableColor resolves the single status color a table renders with. Seated
// parties show the turn-time band instead of the flat status color.
func (f *FloorModel) tableColor(t model.Table) lipgloss.Color {
	if (t.Status == model.StatusSeated || t.Status == model.StatusOccupied) && t.Current != nil {
		elapsed := floorplan.ElapsedMinutes(t.Current.SeatedAt, f.now())
		expected := floorplan.DefaultExpectedMinutes
		if t.Current.Covers > 0 {
			expected = floorplan.ExpectedMinutes(t.Current.Covers)
		}
		return BandColor(floorplan.Classify(elapsed, expected))
	}
	return StatusColor(t.Status)
}

func (f *FloorModel) tableDetail(t model.Table) string {
	switch t.Status {
	case model.StatusSeated, model.StatusOccupied:
		if t.Current == nil {
			return ""
		}
		elapsed := floorplan.ElapsedMinutes(t.Current.SeatedAt, f.now())
		return fmt.Sprintf("%s ×%d", floorplan.FormatElapsed(elapsed), t.Current.Covers)
	case model.StatusUpcoming:
		if t.Current != nil {
			return util.TruncateString(t.Current.GuestName, 10)
		}
		return "soon"
	default:
		return util.FormatCapacity(t.MinCovers, t.MaxCovers)
	}
}

func fillRect(grid [][]cell, r cellRect, c cell) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			putCell(grid, x, y, c)
		}
	}
}

func putCell(grid [][]cell, x, y int, c cell) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = c
}

func writeCentered(grid [][]cell, r cellRect, rowOffset int, text string, fg, bg lipgloss.Color) {
	if text == "" || rowOffset >= r.h {
		return
	}
	text = util.TruncateString(text, r.w)
	y := r.y + (r.h-2)/2 + rowOffset
	if r.h == 1 {
		if rowOffset > 0 {
			return
		}
		y = r.y
	}
	runes := []rune(text)
	x := r.x + (r.w-len(runes))/2
	for i, ch := range runes {
		putCell(grid, x+i, y, cell{ch: ch, fg: fg, bg: bg})
	}
}
