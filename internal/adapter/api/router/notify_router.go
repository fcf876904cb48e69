package router

import (
	"github.com/labstack/echo/v4"

	"dropfit/internal/adapter/api/handler"
	"dropfit/internal/adapter/api/middleware"
)

func SetupNotifyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	notifyHandler := handler.GetNotifyHandler()

	e.POST("/v1/notify", notifyHandler.Join)

	admin := e.Group("/v1/admin/notify")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", notifyHandler.List)
}
