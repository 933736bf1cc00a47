package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/river-rush/internal/core"
	"github.com/vovakirdan/river-rush/internal/games/river"
	"github.com/vovakirdan/river-rush/internal/platform/tui"
	"github.com/vovakirdan/river-rush/internal/registry"
	"github.com/vovakirdan/river-rush/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start a run in the given mode (default: river).

Controls:
  Left/A, Right/D  - Switch lane
  Space/Up/W       - Jump
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty presets:
  easy   - Five lives, more power-ups, progression from the start
  normal - Progression from the start
  hard   - Two lives, shorter invulnerability, starts half way up
  fixed  - No progression

Examples:
  river play
  river play river_zen
  river play river_time_trial --difficulty hard
  river play --config ./my-river.toml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := river.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'river list' to see available modes)", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, saverOf(store), logger, runtimeConfig())
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var menuStore tui.MenuStore
	var lister tui.RunLister
	if store != nil {
		menuStore, lister = store, store
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(menuStore, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(lister, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		if flagDifficulty == "" {
			river.SetDifficultyPreset(result.Difficulty)
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		logger.Info("starting run", "mode", result.GameID, "difficulty", result.Difficulty)
		if err := tui.Run(game, saverOf(store), logger, cfg); err != nil {
			return err
		}
	}
}

// saverOf keeps a nil store from becoming a non-nil interface.
func saverOf(store *storage.Store) tui.RunSaver {
	if store == nil {
		return nil
	}
	return store
}

func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
