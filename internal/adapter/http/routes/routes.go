package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "crm_cotizador/docs"
	"crm_cotizador/internal/adapter/http/handlers"
	"crm_cotizador/internal/infrastructure/metrics"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Quotes       *handlers.QuoteHandler
	Payments     *handlers.QuotePaymentHandler
	PriceSchemes *handlers.PriceSchemeHandler
}

// NewRouter builds the gin engine with middlewares, ops endpoints and the
// public API.
func NewRouter(h Handlers, registry *metrics.Registry, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if registry != nil {
		router.GET("/metrics", gin.WrapH(registry.Handler()))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPriceSchemeRoutes(v1, h.PriceSchemes)
	addQuoteRoutes(v1, h.Quotes)
	addPaymentRoutes(v1, h.Payments)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": "Route not found"})
	})
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
