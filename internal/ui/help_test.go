package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"github.com/KyleKincer/tableyeah-foh/internal/floorplan"
	"github.com/KyleKincer/tableyeah-foh/internal/model"
)

func TestHelpFooterUsesKeyMap(t *testing.T) {
	keys := DefaultKeyMap()
	keys.WalkIn = key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "new party"),
	)

	footer := RenderHelp(model.ScreenFloor, floorplan.ModeNormal, model.InputNav, keys, 120)
	assert.Contains(t, footer, "new party")
	assert.NotContains(t, footer, "seat walk-in")
}

func TestHelpFooterPerMode(t *testing.T) {
	keys := DefaultKeyMap()

	normal := RenderHelp(model.ScreenFloor, floorplan.ModeNormal, model.InputNav, keys, 120)
	assert.Contains(t, normal, "next table")
	assert.Contains(t, normal, "assign servers")

	assign := RenderHelp(model.ScreenFloor, floorplan.ModeAssignServers, model.InputNav, keys, 120)
	assert.Contains(t, assign, "save assignments")
	assert.Contains(t, assign, "cancel mode")
	assert.Contains(t, assign, "pick server")

	waitlist := RenderHelp(model.ScreenWaitlist, floorplan.ModeNormal, model.InputNav, keys, 120)
	assert.Contains(t, waitlist, "seat party")

	// Prompt input overrides the screen help entirely.
	prompt := RenderHelp(model.ScreenFloor, floorplan.ModeWalkIn, model.InputPrompt, keys, 120)
	assert.Contains(t, prompt, "confirm")
	assert.NotContains(t, prompt, "seat party")
}
