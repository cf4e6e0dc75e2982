package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opencustoms/tariff/internal/config"
	"github.com/opencustoms/tariff/internal/database"
	"github.com/opencustoms/tariff/internal/documents"
	"github.com/opencustoms/tariff/internal/middleware"
	"github.com/opencustoms/tariff/internal/tariff/model"
	"github.com/opencustoms/tariff/internal/tariff/router"
	"github.com/opencustoms/tariff/internal/tariff/service"
	"github.com/opencustoms/tariff/internal/tariff/store"
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	slog.Info("configuration loaded successfully",
		"db_host", cfg.Database.Host,
		"db_port", cfg.Database.Port,
		"db_name", cfg.Database.Name,
		"db_sslmode", cfg.Database.SSLMode,
		"gst_rate_percent", cfg.Duty.GSTRatePercent,
		"server_port", cfg.Server.Port,
	)

	// Initialize database connection
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Perform health check
	if err := database.HealthCheck(db); err != nil {
		log.Fatalf("database health check failed: %v", err)
	}

	if cfg.Database.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			log.Fatalf("failed to migrate schema: %v", err)
		}
		slog.Info("schema migration complete")
	}

	// Initialize document storage for news attachments
	storage, err := documents.NewStorageFromConfig(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize document storage: %v", err)
	}
	docHandler := documents.NewHTTPHandler(documents.NewDocumentService(storage))

	// Wire up the tariff service
	rateStore := store.NewStore(db)
	dutyService := service.NewDutyService(rateStore, cfg.Duty)
	tr := router.NewTariffRouter(dutyService)

	// Set up HTTP routes
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/duty/calculate", tr.HandleCalculateDuty)
	mux.HandleFunc("GET /api/duty/rates/{hsCode}", tr.HandleGetRates)
	mux.HandleFunc("GET /api/duty/fta-rates/{hsCode}/{countryCode}", tr.HandleGetFtaRates)
	mux.HandleFunc("GET /api/duty/tco-check/{hsCode}", tr.HandleTcoCheck)
	mux.HandleFunc("GET /api/tariff/codes", tr.HandleSearchTariffCodes)
	mux.HandleFunc("GET /api/tariff/codes/{hsCode}", tr.HandleGetTariffCode)
	mux.HandleFunc("GET /api/agreements", tr.HandleListAgreements)
	mux.HandleFunc("GET /api/export/codes/{aheccCode}", tr.HandleGetExportCode)
	mux.HandleFunc("GET /api/news", tr.HandleListNews)
	mux.HandleFunc("GET /api/news/{newsID}", tr.HandleGetNews)
	mux.HandleFunc("POST /api/documents", docHandler.Upload)
	mux.HandleFunc("GET /api/documents/{key}", docHandler.Download)

	// Wrap handler with CORS and request logging middleware
	handler := middleware.CORS(&cfg.CORS)(middleware.Logging()(mux))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: handler,
	}

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	// Wait for interrupt signal
	<-quit
	slog.Info("shutting down server...")

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown of HTTP server
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	} else {
		slog.Info("server gracefully stopped")
	}

	slog.Info("server stopped")
}
