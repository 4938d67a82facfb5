package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/corgi-arcade/internal/core"
	"github.com/vovakirdan/corgi-arcade/internal/metrics"
	"github.com/vovakirdan/corgi-arcade/internal/registry"
	"github.com/vovakirdan/corgi-arcade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.corgi/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// GameID is the game started for every session.
	GameID string

	// TickRate is the simulation rate of each session.
	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// RateLimit throttles new sessions per remote IP.
	RateLimit RateLimitConfig

	// Logger receives server and gameplay logs. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.corgi/scores.db",
		GameID:      "corgi",
		TickRate:    30,
		IdleTimeout: 30 * time.Minute,
		RateLimit:   DefaultRateLimitConfig,
	}
}

// SSHServer wraps a Wish SSH server that hosts one game per session.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	limiter *ConnLimiter
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "corgi-ssh",
		})
	}

	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("tui: unknown game %q", cfg.GameID)
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil // Continue without storage
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		limiter: NewConnLimiter(cfg.RateLimit),
		logger:  logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".corgi", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	// Middlewares run last to first: logging, then rate limiting, then the game.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.rateLimitMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game model for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		metrics.RecordConnectionRejected(metrics.ReasonNoPTY)
		s.logger.Warn("no PTY requested", "user", sess.User())
		wish.Fatalln(sess, "corgi needs an interactive terminal (ssh -t)")
		return nil, nil
	}

	game, err := registry.Create(s.config.GameID)
	if err != nil {
		s.logger.Error("cannot create game", "error", err)
		wish.Fatalln(sess, "game unavailable")
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model, err := NewModel(game, s.store, cfg, Options{
		Logger:   s.logger.With("user", sess.User()),
		Player:   sess.User(),
		Renderer: NewScreenRenderer(bubbletea.MakeRenderer(sess)),
	})
	if err != nil {
		s.logger.Error("cannot start game", "user", sess.User(), "error", err)
		wish.Fatalln(sess, "game failed to start")
		return nil, nil
	}

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// rateLimitMiddleware turns away clients reconnecting too quickly.
func (s *SSHServer) rateLimitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if !s.limiter.Allow(sess.RemoteAddr(), time.Now()) {
			metrics.RecordConnectionRejected(metrics.ReasonRateLimit)
			s.logger.Warn("rate limited", "remote", sess.RemoteAddr().String())
			wish.Fatalln(sess, "too many connections, try again later")
			return
		}
		next(sess)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		metrics.SessionStarted()
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		metrics.SessionEnded()
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "game", s.config.GameID)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.closeStore()
		return fmt.Errorf("tui: ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
