// river is River Rush, a lane-based endless runner for the terminal.
//
// Usage:
//
//	river                    - Start the mode picker menu
//	river play [mode]        - Play a mode directly (default: river)
//	river list               - List available modes
//	river scores [mode]      - Show best runs
//	river simulate           - Run headless autopilot games
//	river config dump        - Print the effective config
//	river config validate    - Validate a config file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.river-rush/river.db)
//	--config <path>       - Load gameplay config from a YAML or TOML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/river-rush/internal/config"
	"github.com/vovakirdan/river-rush/internal/games/river"
	"github.com/vovakirdan/river-rush/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagTutorial   bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	defer closeLog()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		closeLog()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "river",
	Short: "River Rush - an endless river runner for your terminal",
	Long: `River Rush is a lane-based endless runner. Ride the river, switch
between three lanes, jump over logs and rocks, and collect coins, gems
and power-ups while the current speeds up.

Modes:
  river             - Classic: three lives, obstacles, rising speed
  river_zen         - Zen: no obstacles, just collecting
  river_time_trial  - Time trial: no damage, 60 seconds on the clock

Examples:
  river
  river play
  river play river_time_trial --difficulty hard
  river scores river_zen
  river simulate --runs 8 --ticks 3600`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to the runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to a gameplay config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagTutorial, "tutorial", false, "Start runs with an extended no-damage window")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// setup configures logging and the river package from global flags.
func setup(cmd *cobra.Command, _ []string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	l, err := newLogger(cmd.ErrOrStderr(), interactive(cmd))
	if err != nil {
		return err
	}
	logger = l

	river.SetLogger(logger)
	river.SetConfigPath(flagConfig)
	river.SetDifficultyPreset(flagDifficulty)
	river.SetTutorial(flagTutorial)
	return nil
}

// interactive reports whether cmd takes over the terminal, in which case
// logs only go to --log-file.
func interactive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "play"
}

func newLogger(stderr io.Writer, tui bool) (*log.Logger, error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case tui:
		w = io.Discard
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "river",
	})
	l.SetLevel(level)
	return l, nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// openStore opens the runs database. Failures are logged and yield nil so
// the game can still be played without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("runs database unavailable, runs will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
