package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/agromart/internal/domain/model"
	"github.com/polkiloo/agromart/internal/server/http/handlers"
	"github.com/polkiloo/agromart/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.MarketFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	rfqHandler := handlers.NewRfqHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	inspectionHandler := handlers.NewInspectionHandler(facade)

	api := engine.Group("/api")
	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	rfqs := authed.Group("/rfqs")
	rfqs.POST("", middleware.RoleRequired(model.RoleBuyer), rfqHandler.Create)
	rfqs.GET("", rfqHandler.List)
	rfqs.GET("/:id", rfqHandler.Get)
	rfqs.GET("/:id/quotes", rfqHandler.ListQuotes)
	rfqs.POST("/:id/quotes", middleware.RoleRequired(model.RoleSeller), rfqHandler.SubmitQuote)

	quotes := authed.Group("/quotes")
	quotes.POST("/:id/accept", middleware.RoleRequired(model.RoleBuyer), rfqHandler.AcceptQuote)
	quotes.POST("/:id/reject", middleware.RoleRequired(model.RoleBuyer), rfqHandler.RejectQuote)

	orders := authed.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("/:id/history", orderHandler.History)
	orders.POST("/:id/advance", orderHandler.Advance)
	orders.POST("/:id/cancel", orderHandler.Cancel)
	orders.PUT("/:id/shipping", orderHandler.UpdateShipping)
	orders.POST("/:id/payments", middleware.RoleRequired(model.RoleBuyer), paymentHandler.Record)
	orders.GET("/:id/payments", paymentHandler.List)
	orders.POST("/:id/inspections", middleware.RoleRequired(model.RoleInspector), inspectionHandler.Create)
	orders.GET("/:id/inspections", inspectionHandler.List)

	payments := authed.Group("/payments")
	payments.POST("/:id/verify", middleware.RoleRequired(model.RoleAdmin), paymentHandler.Verify)
	payments.POST("/:id/reject", middleware.RoleRequired(model.RoleAdmin), paymentHandler.Reject)
	payments.POST("/:id/refund", middleware.RoleRequired(model.RoleAdmin), paymentHandler.Refund)

	inspections := authed.Group("/inspections")
	inspections.GET("/:id", inspectionHandler.Get)
	inspections.PUT("/:id/checklist", middleware.RoleRequired(model.RoleInspector), inspectionHandler.UpdateChecklist)
	inspections.POST("/:id/photos", middleware.RoleRequired(model.RoleInspector), inspectionHandler.AddPhoto)
	inspections.POST("/:id/complete", middleware.RoleRequired(model.RoleInspector), inspectionHandler.Complete)

	return engine
}
