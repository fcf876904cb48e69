package router

import (
	"github.com/labstack/echo/v4"

	"dropfit/internal/adapter/api/handler"
	"dropfit/internal/adapter/api/middleware"
)

func SetupDropRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	dropHandler := handler.GetDropHandler()

	drops := e.Group("/v1/drops")
	drops.GET("", dropHandler.ListDrops)
	drops.GET("/next", dropHandler.NextDrop)
	drops.GET("/:id", dropHandler.GetDrop)

	admin := e.Group("/v1/admin/drops")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", dropHandler.CreateDrop)
	admin.PUT("/:id", dropHandler.UpdateDrop)
	admin.POST("/:id/announce", dropHandler.Announce)
}
