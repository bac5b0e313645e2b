package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/lmenard/marquee/internal/config"
	"github.com/lmenard/marquee/internal/discover"
	"github.com/lmenard/marquee/internal/log"
	"github.com/lmenard/marquee/internal/store"
	"github.com/lmenard/marquee/internal/tmdb"
	"github.com/lmenard/marquee/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting marquee", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		if err := runSetupFlow(cfg, logger); err != nil {
			return err
		}
		// Reload so the saved key takes effect
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to reload config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// Open the catalog cache; degrade to memory-only when the cache
	// directory is unusable
	cache, err := store.NewCatalogStore(config.CachePath())
	if err != nil {
		logger.Warn("cache unavailable, running memory-only", "error", err)
		cache, _ = store.NewCatalogStore("")
	}
	defer cache.Close()

	// Create catalog client and trailer resolver
	client := tmdb.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, cfg.Catalog.Language, logger)
	resolver := discover.NewTrailerResolver(client)

	// Create TUI model
	model := tui.NewModel(client, cache, resolver, cfg, logger)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow prompts for a catalog API key when none is configured
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Marquee!")
	fmt.Println()
	fmt.Println("A TMDB API key is required to browse the catalog.")
	fmt.Println("Get one for free at https://www.themoviedb.org/settings/api")
	fmt.Println()

	var apiKey string
	for {
		fmt.Print("Enter your API key (input hidden): ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		apiKey = strings.TrimSpace(string(raw))
		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		// Verify the key with a cheap call before saving
		fmt.Println("Checking key...")
		if err := verifyAPIKey(cfg, apiKey, logger); err != nil {
			fmt.Printf("✗ Key rejected: %v\n", err)
			fmt.Println("Please try again.")
			fmt.Println()
			continue
		}
		break
	}

	if err := config.SaveAPIKey(apiKey); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()

	return nil
}

// verifyAPIKey makes a single genre-list call with the candidate key
func verifyAPIKey(cfg *config.Config, apiKey string, logger *slog.Logger) error {
	client := tmdb.NewClient(cfg.Catalog.BaseURL, apiKey, cfg.Catalog.Language, logger)
	_, err := client.Genres(context.Background())
	return err
}
