package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blockexplorer/internal/adapters/restapi"
	"blockexplorer/internal/adapters/storage/memory/watchlist"
	"blockexplorer/internal/config"
	"blockexplorer/internal/core/application"
	"blockexplorer/internal/core/domain/client"
	"blockexplorer/internal/logger"
	"blockexplorer/pkg/blockcypher"
)

// Compile-time check to ensure the blockcypher client satisfies the data client port.
var _ client.ExplorerClient = (*blockcypher.Client)(nil)

// main is entry point of application.
func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (default: config/config.yml)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logger: %v\n", err)
		os.Exit(1)
	}

	logMsg := "Configuration loaded successfully"
	if *configFile != "" {
		appLogger.Info(logMsg, "configFile", *configFile)
	} else {
		appLogger.Info(logMsg, "configFile", config.DefaultConfigFilePath+" (default)")
	}

	httpClient := &http.Client{Timeout: time.Duration(cfg.Explorer.ClientTimeoutSeconds) * time.Second}

	dataClient := blockcypher.NewClient(
		blockcypher.WithBaseURL(cfg.Explorer.APIBaseURL),
		blockcypher.WithTransactionLimit(cfg.Explorer.TxPageLimit),
		blockcypher.WithHTTPClient(httpClient),
	)
	watchlistRepo := watchlist.NewInMemoryWatchlistRepo()

	explorerService, err := application.NewExplorerService(watchlistRepo, dataClient, appLogger)
	if err != nil {
		appLogger.Error("Failed to create explorer service", "error", err)
		os.Exit(1)
	}

	apiServer, err := restapi.NewServer(explorerService, appLogger, &cfg.Server)
	if err != nil {
		appLogger.Error("Failed to create API server", "error", err)
		os.Exit(1)
	}

	runUntilShutdown(appLogger, apiServer)

	appLogger.Info("Application shut down gracefully.")
}

// runUntilShutdown starts the API server and blocks until an OS signal or a server error.
func runUntilShutdown(appLogger logger.AppLogger, apiServer *restapi.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if errServ := apiServer.Start(); errServ != nil && !errors.Is(errServ, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", errServ)
		}
	}()

	select {
	case err := <-errChan:
		appLogger.Error("Shutting down due to error", "error", err)
	case <-ctx.Done():
		appLogger.Info("Shutting down due to OS signal...")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown error", "error", err)
	}
}
