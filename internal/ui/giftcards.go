package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KyleKincer/tableyeah-foh/internal/model"
	"github.com/KyleKincer/tableyeah-foh/internal/util"
)

// GiftCardsModel represents the gift cards screen.
type GiftCardsModel struct {
	cards  []model.GiftCard
	cursor int
	offset int
}

// NewGiftCardsModel creates a new gift cards model.
func NewGiftCardsModel(cards []model.GiftCard) *GiftCardsModel {
	return &GiftCardsModel{cards: cards}
}

// SelectedCard returns the card under the cursor, or nil.
func (m *GiftCardsModel) SelectedCard() *model.GiftCard {
	if len(m.cards) == 0 || m.cursor >= len(m.cards) {
		return nil
	}
	return &m.cards[m.cursor]
}

// CursorDown moves the cursor down.
func (m *GiftCardsModel) CursorDown() {
	if m.cursor < len(m.cards)-1 {
		m.cursor++
		if m.cursor >= m.offset+10 {
			m.offset++
		}
	}
}

// CursorUp moves the cursor up.
func (m *GiftCardsModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		if m.cursor < m.offset {
			m.offset--
		}
	}
}

// JumpToTop jumps to the first card.
func (m *GiftCardsModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last card.
func (m *GiftCardsModel) JumpToBottom() {
	if len(m.cards) > 0 {
		m.cursor = len(m.cards) - 1
		if m.cursor >= 10 {
			m.offset = m.cursor - 9
		}
	}
}

func giftCardStateStyle(state string) lipgloss.Style {
	switch state {
	case "active":
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case "redeemed":
		return lipgloss.NewStyle().Foreground(ColorMuted)
	case "void":
		return lipgloss.NewStyle().Foreground(ColorRed)
	default:
		return lipgloss.NewStyle().Foreground(ColorText)
	}
}

// View renders the gift cards screen.
func (m *GiftCardsModel) View(width, height int) string {
	if len(m.cards) == 0 {
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render("    No gift cards issued.")
	}

	visibleHeight := height - 3
	header := TableHeaderStyle.Width(width).Render(
		fmt.Sprintf("  %-14s %-10s %-20s %-10s %s", "CODE", "BALANCE", "PURCHASER", "STATE", "ISSUED"))

	var rows []string
	var outstanding int64
	for _, c := range m.cards {
		if c.State == "active" {
			outstanding += c.BalanceCents
		}
	}

	for i := m.offset; i < len(m.cards) && i < m.offset+visibleHeight; i++ {
		c := m.cards[i]
		line := fmt.Sprintf("  %-14s %-10s %-20s %-10s %s",
			c.Code,
			util.FormatMoney(c.BalanceCents),
			util.TruncateString(c.Purchaser, 20),
			giftCardStateStyle(c.State).Render(fmt.Sprintf("%-10s", c.State)),
			c.IssuedAt.Format("Jan 2 2006"))

		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}
		rows = append(rows, style.Width(width).Render(line))
	}

	status := StatusBarStyle.Render(fmt.Sprintf("%d cards · %s outstanding",
		len(m.cards), util.FormatMoney(outstanding)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		strings.Join(rows, "\n"),
		"",
		status,
	)
}
