// Package server provides the HTTP server lifecycle management for the
// fieldtask reference server.
package server

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fieldtask/fieldtask/internal/api"
	"github.com/fieldtask/fieldtask/internal/storage"
)

const (
	// DefaultAddress is the default address the server listens on.
	DefaultAddress = "localhost:8714"
	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 30 * time.Second
)

// Server manages the HTTP server lifecycle.
type Server struct {
	httpServer *http.Server
	store      *storage.Store
	logger     *log.Logger
	listener   net.Listener
	mu         sync.Mutex
	started    bool
}

// New creates a new Server instance.
// If addr is empty, DefaultAddress will be used.
func New(addr string, store *storage.Store) *Server {
	if addr == "" {
		addr = DefaultAddress
	}

	router := api.NewRouter(store)

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:  store,
		logger: log.New(os.Stdout, "[fieldtaskd] ", log.LstdFlags),
	}
}

// Start starts the HTTP server and blocks until the server is shut down.
// It returns http.ErrServerClosed when the server is gracefully shut down.
func (s *Server) Start() error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}

	// Create listener first so we know the actual address (for port 0 case)
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.listener = ln
	s.started = true
	s.mu.Unlock()

	s.logger.Printf("Server listening on %s", ln.Addr().String())

	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server without interrupting active
// connections. It waits for active connections to finish or until the
// context is canceled.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	s.logger.Println("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	if err := s.store.Close(); err != nil {
		s.logger.Printf("Warning: error closing store: %v", err)
	}

	s.logger.Println("Server stopped")
	return nil
}

// Addr returns the address the server is listening on.
// Returns empty string if the server hasn't started yet.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// ListenAndServe starts the server with signal handling for graceful
// shutdown. It handles SIGINT and SIGTERM signals.
func (s *Server) ListenAndServe() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		s.logger.Printf("Received signal: %v", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()

	return s.Shutdown(ctx)
}
