package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/KyleKincer/tableyeah-foh/internal/floorplan"
	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

// RenderHelp renders the context-sensitive help footer from the active
// keybindings.
func RenderHelp(screen model.Screen, mode floorplan.Mode, input model.InputMode, keys KeyMap, width int) string {
	if input == model.InputPrompt {
		return renderPromptHelp(width)
	}

	switch screen {
	case model.ScreenFloor:
		return renderFloorHelp(mode, keys, width)
	case model.ScreenWaitlist:
		return renderWaitlistHelp(keys, width)
	case model.ScreenGuests:
		return renderGuestsHelp(keys, width)
	case model.ScreenEvents, model.ScreenGiftCards:
		return renderListHelp(keys, width)
	case model.ScreenSettings:
		return renderSettingsHelp(keys, width)
	default:
		return renderDefaultHelp(keys, width)
	}
}

func renderFloorHelp(mode floorplan.Mode, keys KeyMap, width int) string {
	switch mode {
	case floorplan.ModeWalkIn:
		return renderHelpLine([]string{
			helpKey("click/enter", "seat party"),
			bindingHelp(keys.CancelMode),
		}, width)
	case floorplan.ModeSeatWaitlist:
		return renderHelpLine([]string{
			helpKey("click/enter", "seat on open table"),
			bindingHelp(keys.CancelMode),
		}, width)
	case floorplan.ModeAssignServers:
		return renderHelpLine([]string{
			helpKey("1-9", "pick server"),
			helpKey("click/enter", "toggle table"),
			bindingHelp(keys.SaveAssign),
			bindingHelp(keys.CancelMode),
		}, width)
	default:
		return renderHelpLine([]string{
			bindingHelp(keys.NextTable),
			bindingHelp(keys.Tap),
			bindingHelp(keys.Hold),
			bindingHelp(keys.WalkIn),
			bindingHelp(keys.Assign),
			bindingHelp(keys.Refresh),
			helpKey("2-6", "screens"),
		}, width)
	}
}

func renderWaitlistHelp(keys KeyMap, width int) string {
	return renderHelpLine([]string{
		helpKey("j/k", "navigate"),
		bindingHelp(keys.Seat),
		bindingHelp(keys.Refresh),
		helpKey("1-6", "screens"),
	}, width)
}

func renderGuestsHelp(keys KeyMap, width int) string {
	return renderHelpLine([]string{
		helpKey("j/k", "navigate"),
		bindingHelp(keys.NextColumn),
		helpKey("s/S", "sort"),
		helpKey("n/N", "filter"),
		helpKey("c/C", "hide/show col"),
		bindingHelp(keys.Search),
		bindingHelp(keys.ColumnJump),
	}, width)
}

func renderListHelp(keys KeyMap, width int) string {
	return renderHelpLine([]string{
		helpKey("j/k", "navigate"),
		bindingHelp(keys.Refresh),
		helpKey("1-6", "screens"),
	}, width)
}

func renderSettingsHelp(keys KeyMap, width int) string {
	return renderHelpLine([]string{
		bindingHelp(keys.Refresh),
		helpKey("1-6", "screens"),
		bindingHelp(keys.Quit),
	}, width)
}

func renderPromptHelp(width int) string {
	return renderHelpLine([]string{
		helpKey("enter", "confirm"),
		helpKey("esc", "cancel"),
	}, width)
}

func renderDefaultHelp(keys KeyMap, width int) string {
	return renderHelpLine([]string{
		helpKey("j/k", "navigate"),
		bindingHelp(keys.Quit),
	}, width)
}

func bindingHelp(b key.Binding) string {
	h := b.Help()
	return helpKey(h.Key, h.Desc)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation"),
		helpSection([]helpItem{
			{"1-6", "Switch screen (floor, waitlist, guests, events, gift cards, settings)"},
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"r", "Refresh current screen"},
			{"esc", "Cancel / close"},
			{"q", "Quit (from normal mode)"},
			{"?", "Toggle help"},
		}),
		titleSection("Floor Plan"),
		helpSection([]helpItem{
			{"tab / shift+tab", "Cycle table focus"},
			{"enter / click", "Tap focused table"},
			{"o / right-click", "Hold focused table"},
			{"w", "Seat a walk-in"},
			{"a", "Assign servers"},
			{"1-9", "Pick server (assign mode)"},
			{"s", "Save assignments (assign mode)"},
		}),
		titleSection("Waitlist"),
		helpSection([]helpItem{
			{"s", "Seat selected party (pick a table on the floor)"},
		}),
		titleSection("Guest Book"),
		helpSection([]helpItem{
			{"f", "Search guests"},
			{"tab / shift+tab", "Cycle active column"},
			{"/ then 1-9", "Jump to column"},
			{"s / S", "Sort active column asc/desc"},
			{"c / C", "Hide active column / show all"},
			{"n / N", "Filter by selected value / clear"},
			{"ctrl+d / ctrl+u", "Half page down / up"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
