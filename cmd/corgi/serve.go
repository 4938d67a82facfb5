package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/corgi-arcade/internal/games/corgi"
	"github.com/vovakirdan/corgi-arcade/internal/metrics"
	"github.com/vovakirdan/corgi-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
	flagConnRate    float64
	flagConnBurst   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the corgi SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. Scores are stored per-server
(all users share the same leaderboard, keyed by SSH user name).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.corgi/host_key

Examples:
  corgi serve                           # Listen on :23234 with auto-generated key
  corgi serve --ssh :2222               # Listen on port 2222
  corgi serve --metrics 127.0.0.1:9100  # Expose Prometheus metrics
  corgi serve --difficulty hard         # Every session plays on hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Serve /metrics and /healthz on this address")
	serveCmd.Flags().Float64Var(&flagConnRate, "max-conn-rate", defaults.RateLimit.PerSecond, "New sessions per second per IP")
	serveCmd.Flags().IntVar(&flagConnBurst, "conn-burst", defaults.RateLimit.Burst, "Session burst per IP")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom level config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	serveCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with sprite files (default: built-in)")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger("corgi-ssh", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = corgi.GameID
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.RateLimit.PerSecond = flagConnRate
	cfg.RateLimit.Burst = flagConnBurst
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	if flagMetricsAddr != "" {
		ms := metrics.NewServer(flagMetricsAddr)
		go func() {
			logger.Info("serving metrics", "address", flagMetricsAddr)
			if err := ms.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			ms.Shutdown(ctx) //nolint:errcheck // Best-effort on exit
		}()
	}

	logger.Info("connect with", "command", "ssh localhost -p "+portOf(cfg.Address))
	return server.ListenAndServe()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
