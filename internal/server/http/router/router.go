package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/polkiloo/simpleshop/internal/server/http/handlers"
	"github.com/polkiloo/simpleshop/internal/server/http/middleware"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(Setup)

// Params lists router dependencies.
type Params struct {
	fx.In

	Facade   handlers.ShopFacade
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	orderHandler := handlers.NewOrderHandler(p.Facade)
	customerHandler := handlers.NewCustomerHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Facade)

	api := engine.Group("/api")
	api.POST("/orders", orderHandler.Place)
	api.POST("/orders/sum", orderHandler.Sum)
	api.GET("/customers/:id", customerHandler.Get)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{})))

	return engine
}
