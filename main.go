package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/KyleKincer/tableyeah-foh/cmd"
	"github.com/KyleKincer/tableyeah-foh/internal/api"
	"github.com/KyleKincer/tableyeah-foh/internal/cache"
	"github.com/KyleKincer/tableyeah-foh/internal/logging"
	"github.com/KyleKincer/tableyeah-foh/internal/ui"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	config, err := cmd.ParseFlags(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(config.LogPath, config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// The token tells us who is signed in and which venue this device
	// belongs to. A token we cannot decode still works for auth; the
	// settings screen just shows less.
	var staff *api.StaffInfo
	if info, err := api.ParseStaffToken(config.Token); err == nil {
		staff = &info
	} else {
		logger.Warn("could not decode access token", zap.Error(err))
	}

	venue := config.Venue
	if venue == "" && staff != nil {
		venue = staff.Venue
	}
	if venue == "" {
		fmt.Fprintln(os.Stderr, "Error: no venue configured; pass -venue or use a token with a venue claim")
		os.Exit(1)
	}

	store, err := cache.Open(config.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open offline cache: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	client := api.New(config.APIBaseURL, config.Token, venue, logger)

	logger.Info("starting",
		zap.String("version", version),
		zap.String("venue", venue),
		zap.String("api", config.APIBaseURL))

	p := tea.NewProgram(
		ui.New(client, store, logger, staff, config.APIBaseURL, version),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
