package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Uaq907/estateflow-sub002/internal/core"
	"github.com/Uaq907/estateflow-sub002/internal/infrastructure"
	transport "github.com/Uaq907/estateflow-sub002/internal/transport/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the property management API server",
	Long:  `Launches the HTTP server that handles authentication, portfolio queries, lease schedules, cheque settlement, and demo data generation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer() error {
	logger.Info("Initializing Property Management Service...")

	// --- Infrastructure Setup ---
	logger.Info("Connecting to database...")
	db, err := infrastructure.NewDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer db.Close()

	logger.Info("Connecting to cache...")
	cache, err := infrastructure.NewCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("cache connection failed: %w", err)
	}
	defer cache.Close()

	// --- Service Layer Setup ---
	store := core.NewRepository(db.DB)

	services := &core.ServiceRegistry{
		Auth:      core.NewAuthService(store, cache, logger, cfg.Auth.SessionTTL),
		Portfolio: core.NewPortfolioService(store, logger),
		Leasing:   core.NewLeasingService(store, logger),
		Cheques:   core.NewChequeService(store, logger),
		Dashboard: core.NewDashboardService(store, cache, logger),
	}

	// --- API Layer Setup ---
	router := gin.New()
	router.Use(gin.Recovery())

	handlers := transport.NewHandlers(services, store, cfg.Demo, logger)
	transport.SetupRoutes(router, handlers, services, logger)

	// --- HTTP Server ---
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// --- Graceful Shutdown ---
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("Property Management API listening on %s", serverAddr)
		logger.Info("Service started successfully")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-shutdownChan

	logger.Warn("Shutdown signal received, initiating graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	} else {
		logger.Info("Server stopped gracefully")
	}

	logger.Info("Property Management Service shutdown complete")
	return nil
}
