package router

import (
	"github.com/labstack/echo/v4"

	"dropfit/internal/adapter/api/handler"
	"dropfit/internal/adapter/api/middleware"
)

func SetupCommunityRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	communityHandler := handler.GetCommunityHandler()

	community := e.Group("/v1/community")
	community.GET("", communityHandler.ListPosts)
	community.POST("", communityHandler.CreatePost, authMiddleware.Authenticate)
}
