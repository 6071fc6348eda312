package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/powerfrill/showcase-backend-go/internal/handler"
	"github.com/powerfrill/showcase-backend-go/internal/middleware"
	"github.com/powerfrill/showcase-backend-go/internal/service"
)

// Dependencies are the collaborators the router wires into handlers
type Dependencies struct {
	Logger       *zap.Logger
	Limiter      *middleware.RateLimiter // nil disables rate limiting
	Catalog      *service.CatalogService
	Choreography *service.ChoreographyService
}

// SetupRouter 设置路由
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(deps.Logger))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Showcase API is running",
			"products": len(deps.Catalog.GetProducts()),
		})
	})

	catalogHandler := handler.NewCatalogHandler(deps.Catalog)
	choreographyHandler := handler.NewChoreographyHandler(deps.Choreography)

	api := r.Group("/api/v1")
	if deps.Limiter != nil {
		api.Use(middleware.RateLimit(deps.Limiter))
	}
	{
		solutions := api.Group("/solutions")
		{
			solutions.GET("", catalogHandler.GetSolutions)
			solutions.GET("/:id", catalogHandler.GetSolution)
			solutions.GET("/:id/categories", catalogHandler.GetSolutionCategories)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", catalogHandler.GetCategories)
			categories.GET("/:id", catalogHandler.GetCategory)
			categories.GET("/:id/products", catalogHandler.GetCategoryProducts)
		}

		products := api.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		sequences := api.Group("/sequences")
		{
			sequences.GET("", catalogHandler.GetSequences)
			sequences.GET("/:name", catalogHandler.GetSequence)
		}

		choreography := api.Group("/choreography")
		{
			choreography.GET("/frame", choreographyHandler.GetFrame)
			choreography.GET("/scroll-target", choreographyHandler.GetScrollTarget)
			choreography.GET("/presets", choreographyHandler.GetPresets)
		}
	}

	return r
}
