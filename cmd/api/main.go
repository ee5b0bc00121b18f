package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/chart"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/config"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/database"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/forecast"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/handlers"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/logger"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/marketdata"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/news"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/sentiment"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/services"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/validator"

	_ "github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/docs" // Import swagger docs
)

// @title           Stock Insight API
// @version         1.0
// @description     Stock analysis backend: price forecasting, news sentiment, portfolio optimization and loss averaging.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:5000
// @BasePath  /

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openAuditDB(appConfig)
	if err != nil {
		return err
	}

	upstream := &http.Client{Timeout: appConfig.RequestTimeout}

	market := marketdata.NewFallbackProvider(logger.Named("marketdata"),
		marketdata.NewYahooProvider(upstream),
		marketdata.NewYFinanceProvider(),
	)

	fcfg := forecast.DefaultConfig()
	fcfg.ReservoirSize = appConfig.ForecastReservoirSize
	fcfg.Seed = appConfig.ForecastSeed

	newsClient := news.NewClient(upstream, appConfig.NewsBaseURL,
		appConfig.NewsMaxArticles, appConfig.ArticleMaxChars, logger.Named("news"))

	// Initialize services
	auditService := services.NewAuditService(db)
	predictionService := services.NewPredictionService(market, forecast.New(fcfg), chart.NewRenderer(), appConfig.ForecastStartDate)
	sentimentService := services.NewSentimentService(newsClient, newClassifier(ctx, appConfig, logger.Named("sentiment")), market)
	portfolioService := services.NewPortfolioService(market)
	averagingService := services.NewAveragingService(market, appConfig.Currency)

	router := newRouter(appConfig, routes{
		prediction: handlers.NewPredictionHandler(predictionService, auditService),
		news:       handlers.NewNewsHandler(sentimentService, auditService),
		portfolio:  handlers.NewPortfolioHandler(portfolioService, auditService),
		averaging:  handlers.NewAveragingHandler(averagingService, auditService),
		runs:       handlers.NewRunHandler(auditService),
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Stock Insight server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.RequestTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// openAuditDB opens and migrates the audit database. A nil DB disables the audit trail.
func openAuditDB(appConfig *config.Config) (*gorm.DB, error) {
	dbConfig := database.NewConfig(appConfig)
	if !dbConfig.Enabled() {
		logger.Get().Info("Audit database disabled")
		return nil, nil
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate("migrations"); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	return dbManager.DB(), nil
}

// newClassifier prefers Gemini when a key is configured and falls back to the
// offline lexicon when the model is unreachable.
func newClassifier(ctx context.Context, appConfig *config.Config, log *zap.SugaredLogger) sentiment.Classifier {
	lexicon := sentiment.NewLexiconClassifier()
	if appConfig.GeminiAPIKey == "" {
		log.Info("GEMINI_API_KEY not set, using lexicon sentiment classifier")
		return lexicon
	}

	gemini, err := sentiment.NewGeminiClassifier(ctx, appConfig.GeminiAPIKey, appConfig.GeminiModel)
	if err != nil {
		log.Warnw("failed to create Gemini classifier, using lexicon", "error", err)
		return lexicon
	}
	return sentiment.NewFallbackClassifier(gemini, lexicon, log)
}
