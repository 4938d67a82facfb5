package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/corgi-arcade/internal/core"
	"github.com/vovakirdan/corgi-arcade/internal/games/corgi"
	"github.com/vovakirdan/corgi-arcade/internal/platform/tui"
	"github.com/vovakirdan/corgi-arcade/internal/registry"
	"github.com/vovakirdan/corgi-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAssets     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: corgi).

Controls:
  Arrows/WASD  - Walk
  Space        - Jump
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Screenshot (~/.corgi/screenshots)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives
  normal - Values from the config
  hard   - 2 lives, 1.5x win score

Examples:
  corgi play
  corgi play --difficulty easy
  corgi play --config ./my-yard.yaml
  corgi play --assets ./sprites --log-file corgi.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite files (default: built-in)")
}

// applyGameFlags passes level flags to the game before creation.
func applyGameFlags() error {
	if err := corgi.SetDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	corgi.SetConfigPath(flagConfig)
	corgi.SetAssetsDir(flagAssets)
	return nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := corgi.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'corgi list' to see available games)", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	// Logs would corrupt the alt screen, so they only go to --log-file
	logger, closeLog, err := newLogger("corgi", nil)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil // Continue without storage - game still works
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, cfg, tui.Options{Logger: logger})
}
