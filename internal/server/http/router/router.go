package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/innovshop/marketplace/internal/config"
	"github.com/innovshop/marketplace/internal/server/http/handlers"
	"github.com/innovshop/marketplace/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	lotHandler := handlers.NewLotHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	sellerHandler := handlers.NewSellerHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade, cfg.PaymentWebhookSecret)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	api.POST("/payments/webhook", paymentHandler.Webhook)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/orders", orderHandler.Place)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:reference", orderHandler.Get)
	authed.PATCH("/orders/:id/status", orderHandler.ChangeStatus)
	authed.PATCH("/lots/:id", lotHandler.Patch)
	authed.POST("/products/:id/reviews", reviewHandler.Create)
	authed.PATCH("/reviews/:id", reviewHandler.Update)
	authed.DELETE("/reviews/:id", reviewHandler.Delete)
	authed.POST("/seller/apply", sellerHandler.Apply)
	authed.PATCH("/admin/sellers/:id/status", sellerHandler.ChangeStatus)

	return engine
}
