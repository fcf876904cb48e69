package router

import (
	"github.com/labstack/echo/v4"

	"dropfit/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware, adminMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupDropRouter(e, authMiddleware, adminMiddleware)
	SetupCommunityRouter(e, authMiddleware)
	SetupNotifyRouter(e, authMiddleware, adminMiddleware)
	SetupCartRouter(e)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
