package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"workspace/internal/config"
	"workspace/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Server is the SSH endpoint exposing the read-only workspace dashboard.
// Every accepted session gets its own dashboard model over the shared
// registry database.
type Server struct {
	addr       string
	dbPath     string
	interval   time.Duration
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance. Clients authenticate against
// ~/.ssh/authorized_keys; the host key is generated under the workspace ssh
// directory on first start.
func NewServer(host, port, dbPath string, interval time.Duration) (*Server, error) {
	s := &Server{
		addr:     net.JoinHostPort(host, port),
		dbPath:   dbPath,
		interval: interval,
	}

	sshDir := config.SSHDir()
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Note: Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.addr),
		wish.WithHostKeyPath(filepath.Join(sshDir, "id_ed25519")),
		wish.WithPublicKeyAuth(publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Start serves SSH sessions until a termination signal or a listener
// failure, then shuts down gracefully.
func (s *Server) Start() error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logging.Logger.Info("Starting SSH server", "address", s.addr)
	fmt.Printf("SSH server listening on %s\n", s.addr)

	serveErr := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("SSH server failed: %w", err)
	case <-done:
	}

	logging.Logger.Info("Shutting down SSH server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
