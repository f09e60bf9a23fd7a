package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geo-audit/backend/audit"
	"github.com/geo-audit/backend/config"
	"github.com/geo-audit/backend/middleware"
	"github.com/geo-audit/backend/stats"
)

// AuditRequest is the snapshot bundle the crawl collaborator posts.
type AuditRequest struct {
	Pages     []audit.PageSnapshot `json:"pages" binding:"required"`
	Resources audit.SiteResources  `json:"resources"`
}

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	statsStorage, err := stats.NewStorage(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize stats storage: %v", err)
	}
	defer statsStorage.Shutdown()

	analyzer := audit.New(audit.WithWorkers(cfg.AuditWorkers))
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitSize)

	r := gin.Default()

	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestID())
	r.Use(rateLimiter.RateLimit())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		api.POST("/audit", func(c *gin.Context) {
			handleAudit(c, analyzer, statsStorage)
		})

		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, statsStorage.GetCurrentStats())
		})
	}

	log.Printf("Server starting on http://localhost:%s\n", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func handleAudit(c *gin.Context, analyzer *audit.Analyzer, statsStorage *stats.Storage) {
	log.Printf("Audit request %v received from: %s\n", c.GetString("requestID"), c.ClientIP())

	var request AuditRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid audit request body",
		})
		return
	}

	analysis, err := analyzer.AnalyzeSite(request.Pages, request.Resources)
	if err != nil {
		statsStorage.RecordAudit("", len(request.Pages), true)
		if errors.Is(err, audit.ErrNoPages) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No pages supplied; at least one crawled page is required",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to analyze site: " + err.Error(),
		})
		return
	}

	statsStorage.RecordAudit(string(analysis.Archetype), analysis.PageCount, false)
	c.JSON(http.StatusOK, analysis)
}
