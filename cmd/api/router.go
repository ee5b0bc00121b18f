package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/config"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/handlers"
	"github.com/Sudhash972004/AI-stock-portfolio-optimizer-and-price-predictor/internal/middleware"
)

// routes groups the handlers served by the API.
type routes struct {
	prediction *handlers.PredictionHandler
	news       *handlers.NewsHandler
	portfolio  *handlers.PortfolioHandler
	averaging  *handlers.AveragingHandler
	runs       *handlers.RunHandler
}

func newRouter(appConfig *config.Config, h routes) *gin.Engine {
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(appConfig.CORSAllowedOrigin))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Timeout(appConfig.RequestTimeout))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Analysis endpoints are served at the root and under /api for
	// clients that proxy everything through one prefix.
	for _, g := range []*gin.RouterGroup{&router.RouterGroup, router.Group("/api")} {
		g.POST("/predict_stock", h.prediction.PredictStock)
		g.GET("/news", h.news.GetNews)
		g.POST("/portfolio-optimize", h.portfolio.OptimizePortfolio)
		g.POST("/loss-averaging", h.averaging.LossAveraging)
	}

	v1 := router.Group("/api/v1")
	v1.GET("/runs", h.runs.ListRuns)

	return router
}
