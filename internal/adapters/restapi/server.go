package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"blockexplorer/internal/config"
	"blockexplorer/internal/logger"
	"blockexplorer/pkg/explorer"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	service    explorer.Explorer
	logger     logger.AppLogger
}

// NewServer creates a new instance of the REST API server.
func NewServer(service explorer.Explorer, appLogger logger.AppLogger, cfg *config.ServerConfig) (*Server, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil for Server")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for Server")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil for Server")
	}

	h, err := NewHTTPHandler(service, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handler: %w", err)
	}

	smux := setupRouter(h, cfg.Port)

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           smux,
		ReadTimeout:       time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
	}

	return &Server{
		httpServer: server,
		service:    service,
		logger:     appLogger,
	}, nil
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "address", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("HTTP server ListenAndServe error", "error", err)
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
		return err
	}
	s.logger.Info("HTTP server stopped gracefully.")
	return nil
}

// setupRouter creates a new ServeMux and registers all API handlers.
func setupRouter(h *HTTPHandler, port string) *http.ServeMux {
	smux := http.NewServeMux()

	smux.HandleFunc("/v1/currencies", h.HandleGetCurrencies)
	smux.HandleFunc("/v1/wallets/{currency}/{address}", h.HandleGetWallet)
	smux.HandleFunc("/v1/transactions/{currency}/{hash}", h.HandleGetTransaction)
	smux.HandleFunc("/v1/watchlist", h.handleWatchlistCollection)
	smux.HandleFunc("/v1/watchlist/{currency}/{address}", h.HandleUnwatch)

	h.logger.Info("-------------------------------------")
	h.logger.Info("API Server starting", "address", port)
	h.logger.Info("Available Endpoints:")
	h.logger.Info("  GET    /v1/currencies")
	h.logger.Info("  GET    /v1/wallets/{currency}/{address}")
	h.logger.Info("  GET    /v1/transactions/{currency}/{hash}")
	h.logger.Info("  GET    /v1/watchlist")
	h.logger.Info("  POST   /v1/watchlist        (Body: {'currency':'bitcoin','address':'...','name':'...'})")
	h.logger.Info("  DELETE /v1/watchlist/{currency}/{address}")
	h.logger.Info("-------------------------------------")

	return smux
}
