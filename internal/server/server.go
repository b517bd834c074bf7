package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/muurk/imc/internal/discovery"
	"github.com/muurk/imc/internal/logging"
	"github.com/muurk/imc/internal/version"
)

// Defaults
const (
	DefaultPort         = 3000
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	ShutdownTimeout     = 10 * time.Second
)

// Config holds the server configuration
type Config struct {
	Host      string
	Port      int    // 0 picks a free port
	Advertise bool   // register the service over mDNS
	Instance  string // mDNS instance name (empty = "imc-<hostname>")
}

// Server is the reference calculator service
type Server struct {
	config   *Config
	http     *fasthttp.Server
	listener net.Listener
}

// New creates a new Server instance
func New(config *Config) *Server {
	return &Server{
		config: config,
		http: &fasthttp.Server{
			Handler:      WithRequestLogging(Route),
			Name:         "imc/" + version.Version,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			Logger:       fasthttpLogger{},
		},
	}
}

// Addr returns the bound listener address, or nil before Run
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start runs the server and blocks until SIGINT or SIGTERM
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run listens on the configured address and serves until ctx ends.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx ends, advertising the service when enabled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.listener = ln

	logging.Info("Starting calculator service",
		zap.String("addr", ln.Addr().String()),
		zap.Bool("advertise", s.config.Advertise),
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.http.Serve(ln); err != nil {
			return fmt.Errorf("calculator service failed: %w", err)
		}
		return nil
	})

	if s.config.Advertise {
		port := s.config.Port
		if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
			port = tcp.Port
		}
		g.Go(func() error {
			return discovery.Advertise(gctx, s.config.Instance, port, discovery.ServiceText(version.Version))
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Shutdown signal received, stopping server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	if err != nil {
		logging.Warn("Shutdown timeout, forcing close", zap.Error(err))
	} else {
		logging.Info("Calculator service stopped")
	}

	logging.Sync()
	return err
}

// fasthttpLogger routes fasthttp's own messages to the logging package
type fasthttpLogger struct{}

func (fasthttpLogger) Printf(format string, args ...any) {
	logging.Warn(fmt.Sprintf(format, args...))
}
