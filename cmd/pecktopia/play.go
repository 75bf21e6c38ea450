package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pecktopia/internal/audio"
	"github.com/vovakirdan/pecktopia/internal/config"
	"github.com/vovakirdan/pecktopia/internal/level"
	"github.com/vovakirdan/pecktopia/internal/platform/tui"
	"github.com/vovakirdan/pecktopia/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pecktopia",
	Long: `Design your chicken and play through the three levels.

Controls:
  Left/A, Right/D  - Walk
  Space/Up/W       - Jump
  Down/S           - Stop
  Enter            - Confirm
  Tab              - Records (title screen)
  R                - Retry after an error
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  pecktopia play
  pecktopia play --sound
  pecktopia play --owner alice --debug
  pecktopia play --config ./my-pecktopia.yaml --log-file pecktopia.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: pecktopia needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	catalog := mustCatalog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	var chimes audio.Chimes = audio.Silent{}
	if flagSound {
		sp, err := audio.NewSpeaker()
		if err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			chimes = sp
		}
	}

	runErr := tui.Run(playOptions(cfg, catalog, store, chimes, logger))

	chimes.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playOptions assembles the game options from the global flags.
func playOptions(cfg config.Config, catalog *level.Catalog, store *storage.Store, chimes audio.Chimes, logger *log.Logger) tui.Options {
	return tui.Options{
		Config:  cfg,
		Catalog: catalog,
		Store:   store,
		Chimes:  chimes,
		Logger:  logger,
		Owner:   flagOwner,
		Debug:   flagDebug,
	}
}
