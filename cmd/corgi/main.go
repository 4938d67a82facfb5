// corgi is a terminal platformer: walk, jump and fetch bones.
//
// Usage:
//
//	corgi play [game]        - Play (default: corgi)
//	corgi list               - List available games
//	corgi scores [game]      - Show high scores
//	corgi serve              - Start SSH server for remote play
//	corgi config defaults    - Print the built-in level config
//	corgi config validate    - Check a config file
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.corgi/scores.db)
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Import games to register them
	_ "github.com/vovakirdan/corgi-arcade/internal/games/corgi"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "corgi",
	Short: "Courageous Corgi - a platformer in your terminal",
	Long: `Courageous Corgi is a small terminal platformer. Walk and jump around
the yard, fetch bones for points and keep out of the puddles.

Available commands:
  play     - Play a game
  list     - Show all available games
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print or check level configs

Examples:
  corgi play
  corgi play --difficulty hard
  corgi serve --ssh :2222 --metrics :9100
  corgi scores --tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.corgi/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set,
// otherwise to fallback. A nil fallback discards them.
// The returned closer releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closer = func() { f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// terminalSize returns the stdout size, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
