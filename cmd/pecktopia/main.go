// pecktopia is a chicken platformer for the terminal.
//
// Usage:
//
//	pecktopia                      - Play (same as 'pecktopia play')
//	pecktopia play                 - Design a chicken and play the three levels
//	pecktopia serve                - Start SSH server for remote play
//	pecktopia levels               - List the levels
//	pecktopia character show       - Show the saved chicken
//	pecktopia character reset      - Forget the saved chicken
//	pecktopia records [level]      - Show the fastest runs
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: from config, 60)
//	--db <path>           - Database path (default: ~/.pecktopia/pecktopia.db)
//	--config <path>       - Custom config YAML
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
//	--sound               - Play chimes on the local audio device
//	--owner <name>        - Whose chicken and runs to use (default: local)
//	--debug               - Outline hitboxes and show the player's state
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pecktopia/internal/config"
	"github.com/vovakirdan/pecktopia/internal/level"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagSound    bool
	flagOwner    string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pecktopia",
	Short: "Pecktopia - a chicken platformer in your terminal",
	Long: `Pecktopia is a small platformer: design your chicken, then hop
through the Chicken Coop, the Farmyard and the Chicken Temple collecting
the Golden Feather, the Silver Egg and the Holy Hat.

Available commands:
  play       - Play the game (default)
  serve      - Start SSH server for remote play
  levels     - List the levels
  character  - Show or reset the saved chicken
  records    - View the fastest runs

Examples:
  pecktopia
  pecktopia play --sound
  pecktopia serve --ssh :2222
  pecktopia records 2`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pecktopia/pecktopia.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	rootCmd.PersistentFlags().StringVar(&flagOwner, "owner", "local", "Owner of the chicken and runs (SSH user name for remote players)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Outline hitboxes and show the player's state")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(characterCmd)
	rootCmd.AddCommand(recordsCmd)
}

// loadConfig reads the game config and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.Loop.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback; the interactive game passes io.Discard since it owns the
// terminal. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "pecktopia",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// mustCatalog loads the built-in levels or exits.
func mustCatalog() *level.Catalog {
	catalog, err := level.Default()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	return catalog
}
