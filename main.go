package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/epeers/overlapalert/config"
	_ "github.com/epeers/overlapalert/docs"
	"github.com/epeers/overlapalert/internal/alphavantage"
	"github.com/epeers/overlapalert/internal/cache"
	"github.com/epeers/overlapalert/internal/database"
	"github.com/epeers/overlapalert/internal/handlers"
	"github.com/epeers/overlapalert/internal/holdings"
	"github.com/epeers/overlapalert/internal/middleware"
	"github.com/epeers/overlapalert/internal/repository"
	"github.com/epeers/overlapalert/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title OverlapAlert API
// @version 1.0
// @description Portfolio look-through exposure and concentration analysis
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.Fatalf("Invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
		}
		log.SetLevel(level)
	}

	// Create context for initialization
	ctx := context.Background()

	// Pick the holdings backend: Postgres if configured, then Alpha Vantage,
	// falling back to the built-in static dataset.
	var backend holdings.Resolver
	var db *database.DB
	switch {
	case cfg.PGURL != "":
		db, err = database.New(ctx, cfg.PGURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		backend = holdings.NewPostgresResolver(repository.NewFundRepository(db.Pool))
		log.Info("Using Postgres holdings backend")
	case cfg.AVKey != "":
		backend = holdings.NewAlphaVantageResolver(alphavantage.NewClient(cfg.AVKey))
		log.Info("Using Alpha Vantage holdings backend")
	default:
		backend = holdings.NewStaticResolver()
		log.Info("Using static holdings backend")
	}

	resolver := holdings.NewCachedResolver(backend, cache.NewMemoryCache())

	// Initialize services
	analysisSvc := services.NewAnalysisService(resolver)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(analysisSvc)
	holdingsHandler := handlers.NewHoldingsHandler(resolver)
	exportHandler := handlers.NewExportHandler(analysisSvc)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Analysis routes
	router.POST("/analyze", analysisHandler.Analyze)
	router.POST("/analyze/csv", analysisHandler.AnalyzeCSV)
	router.POST("/export", exportHandler.Export)

	// Holdings routes
	router.GET("/holdings/:ticker", holdingsHandler.Get)

	// API documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
