package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/services"
	"github.com/justfortestingnothibghere/Api/internal/shared"
)

// Server owns the [http.Server] for the song API.
type Server struct {
	config     shared.ServerConfig
	router     *BasicRouter
	httpServer *http.Server
	logger     *log.Logger
}

// New builds the router, key table and middleware stack from config.
//
// Middleware order, outermost first: recover, request logging, CORS (when origins are configured), key gate.
func New(config *shared.Config, songs services.Service, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	keys, err := models.NewKeyTable(config.Auth.Keys)
	if err != nil {
		return nil, err
	}

	sc := config.Server
	logger = shared.WithLogger(logger, "component", "server")
	if sc.Debug {
		shared.SetLogLevel(logger, log.DebugLevel)
	}
	if sc.AllowBypass {
		logger.Warn("allow_bypass is enabled: requests without an API key skip authorization")
	}

	router := NewBasicRouter()
	router.Use(Recover(logger), RequestLogger(logger))
	if len(sc.CORSOrigins) > 0 {
		router.Use(CORS(sc.CORSOrigins))
	}
	router.Use(NewGate(keys, sc.ProtectedPrefix, sc.AllowBypass, logger).Middleware)

	router.Handler(NewSiteHandler(songs, sc.ProtectedPrefix))
	router.Handler(NewSongsHandler(songs, sc.ProtectedPrefix))

	return &Server{
		config: sc,
		router: router,
		httpServer: &http.Server{
			Addr:              sc.Addr(),
			Handler:           router,
			ReadTimeout:       shared.Timeout(sc.ReadTimeout),
			ReadHeaderTimeout: shared.Timeout(sc.ReadTimeout),
			WriteTimeout:      shared.Timeout(sc.WriteTimeout),
		},
		logger: logger,
	}, nil
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen opens the configured address.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return ln, nil
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
		close(serverErrors)
	}()

	select {
	case err, ok := <-serverErrors:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	timeout := shared.Timeout(s.config.ShutdownTimeout)
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%w: shutdown: %v", shared.ErrTimeout, err)
	}
	return nil
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}
