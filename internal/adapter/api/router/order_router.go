package router

import (
	"github.com/labstack/echo/v4"

	"dropfit/internal/adapter/api/handler"
	"dropfit/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	// Public quote endpoint so checkout can price delivery before login.
	e.GET("/v1/delivery/quote", orderHandler.QuoteDelivery)

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("", orderHandler.CreateOrder)
	orders.GET("", orderHandler.ListMyOrders)
	orders.GET("/:id", orderHandler.GetOrder)

	admin := e.Group("/v1/admin/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", orderHandler.ListOrders)
	admin.PATCH("/:id/status", orderHandler.UpdateStatus)
}
