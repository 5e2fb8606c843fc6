package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/advisor"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/config"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/database"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/handlers"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/logger"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/middleware"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/models"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/repositories"
	"github.com/anithagummuluri12345/ai-powered-personal-finance-advicer/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Server.Environment)

	db, err := database.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open transaction store")
	}
	defer db.Close()

	if err := db.Seed(seedData(cfg)); err != nil {
		log.Fatal().Err(err).Msg("failed to seed transaction store")
	}

	if cfg.Provider.ClientID == "" || cfg.Provider.ClientSecret == "" {
		log.Warn().Msg("bank provider credentials not set, provider endpoints serve sandbox data only")
	}

	advisorClient := buildAdvisorClient(cfg, log)

	e := buildServer(cfg, log, db, advisorClient)

	go func() {
		addr := ":" + cfg.Server.Port
		log.Info().
			Str("addr", addr).
			Str("environment", cfg.Server.Environment).
			Bool("advisor_configured", cfg.HasAdvisorKey()).
			Msg("starting server")

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedData returns the canned dataset plus any configured generated extras.
func seedData(cfg *config.Config) []models.Transaction {
	seed := models.SeedTransactions()

	if cfg.Demo.ExtraTransactions > 0 {
		generator := services.NewTransactionGenerator()
		seed = append(seed, generator.Generate(cfg.Demo.ExtraTransactions)...)
	}

	return seed
}

// buildAdvisorClient wires the advisory model, or a stub that forces fallback
// advice when no key is configured.
func buildAdvisorClient(cfg *config.Config, log zerolog.Logger) advisor.Client {
	if !cfg.HasAdvisorKey() {
		log.Warn().Msg("GEMINI_API_KEY not set, insights will use fallback advice")
		return advisor.NewUnavailableClient()
	}

	client, err := advisor.NewGeminiClient(context.Background(), cfg.Advisor.APIKey, cfg.Advisor.Model)
	if err != nil {
		log.Warn().Err(err).Msg("advisory client setup failed, insights will use fallback advice")
		return advisor.NewUnavailableClient()
	}

	log.Info().Str("model", cfg.Advisor.Model).Msg("advisory model configured")
	return client
}

func buildServer(cfg *config.Config, log zerolog.Logger, db *database.DB, advisorClient advisor.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.PanicRecovery(log))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	metrics := services.NewPrometheusMetrics()
	analysis := services.NewAnalysisService()
	insights := services.NewInsightService(advisorClient, metrics, log)
	provider := services.NewBankProviderService(transactionRepo)

	transactionHandler := handlers.NewTransactionHandler(transactionRepo, analysis, metrics, log)
	insightHandler := handlers.NewInsightHandler(transactionRepo, analysis, insights, log)
	providerHandler := handlers.NewProviderHandler(provider, log)
	healthHandler := handlers.NewHealthCheckHandler(db)

	api := e.Group("/api")

	api.GET("/health", healthHandler.HealthCheck)

	api.GET("/insights", insightHandler.Generate)
	api.GET("/insights/category/:category", insightHandler.GenerateForCategory)

	api.GET("/transactions", transactionHandler.List)
	api.GET("/transactions/category/:category", transactionHandler.ByCategory)
	api.GET("/transactions/date-range", transactionHandler.ByDateRange)
	api.GET("/transactions/summary", transactionHandler.Summary)

	api.GET("/bank/status", providerHandler.Status)
	api.POST("/bank/connect", providerHandler.Connect)
	api.GET("/bank/accounts", providerHandler.Accounts)
	api.GET("/bank/transactions", providerHandler.Transactions)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
