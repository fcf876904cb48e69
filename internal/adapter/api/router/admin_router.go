package router

import (
	"github.com/labstack/echo/v4"

	"dropfit/internal/adapter/api/handler"
	"dropfit/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/orders/export", adminHandler.ExportOrders)
	admin.GET("/users/export", adminHandler.ExportUsers)
	admin.GET("/settings/delivery", adminHandler.GetDeliverySettings)
	admin.PUT("/settings/delivery", adminHandler.UpdateDeliverySettings)
}
