package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	APIBaseURL string
	Token      string
	Venue      string
	ConfigDir  string
	DBPath     string
	LogPath    string
	LogLevel   string
}

// ParseFlags parses command-line flags, the environment, and the saved
// setup file, running first-run setup when no credentials exist yet.
func ParseFlags(version string) (*Config, error) {
	config := &Config{}

	// .env files fill in missing environment variables only.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	flag.StringVar(&config.APIBaseURL, "api", "", "API base URL (or set TABLEYEAH_API_URL)")
	flag.StringVar(&config.Venue, "venue", "", "Venue slug (default: venue claim in the access token)")
	flag.StringVar(&config.DBPath, "db", "", "Path to the offline cache database (default: ~/.tableyeah-foh/cache.db)")
	flag.StringVar(&config.LogLevel, "log-level", "", "Log level: debug, info, warn, error (or set TABLEYEAH_LOG_LEVEL)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("tableyeah-foh " + version)
		os.Exit(0)
	}

	if config.APIBaseURL == "" {
		config.APIBaseURL = os.Getenv("TABLEYEAH_API_URL")
	}
	if config.Venue == "" {
		config.Venue = os.Getenv("TABLEYEAH_VENUE")
	}
	config.Token = os.Getenv("TABLEYEAH_TOKEN")
	if config.LogLevel == "" {
		config.LogLevel = os.Getenv("TABLEYEAH_LOG_LEVEL")
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	if config.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		config.ConfigDir = filepath.Join(home, ".tableyeah-foh")
		if err := os.MkdirAll(config.ConfigDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		config.DBPath = filepath.Join(config.ConfigDir, "cache.db")
	} else {
		config.ConfigDir = filepath.Dir(config.DBPath)
	}
	config.LogPath = filepath.Join(config.ConfigDir, "tableyeah-foh.log")

	settings, err := loadSetupSettings(config.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load setup settings: %w", err)
	}

	if shouldRunSetup(settings, config) {
		settings, err = runSetup(config.ConfigDir, config.APIBaseURL, config.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to run setup: %w", err)
		}
	}

	if config.APIBaseURL == "" {
		config.APIBaseURL = settings.APIBaseURL
	}
	if config.Token == "" {
		token, err := loadSecureToken(config.ConfigDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load access token: %w", err)
		}
		config.Token = strings.TrimSpace(token)
	}

	if config.APIBaseURL == "" {
		return nil, fmt.Errorf("no API base URL configured; pass -api or set TABLEYEAH_API_URL")
	}
	if config.Token == "" {
		return nil, fmt.Errorf("no access token configured; set TABLEYEAH_TOKEN or rerun setup")
	}

	return config, nil
}
