package handler

import (
	"dropfit/internal/infrastructure/ratelimit"
	"dropfit/internal/usecase"
)

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	productHandler   *ProductHandler
	orderHandler     *OrderHandler
	dropHandler      *DropHandler
	communityHandler *CommunityHandler
	notifyHandler    *NotifyHandler
	adminHandler     *AdminHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	dropUseCase *usecase.DropUseCase,
	communityUseCase *usecase.CommunityUseCase,
	notifyUseCase *usecase.NotifyUseCase,
	adminUseCase *usecase.AdminUseCase,
	settingsUseCase *usecase.SettingsUseCase,
	rateLimiter *ratelimit.RateLimiter,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase)
	orderHandler = NewOrderHandler(orderUseCase, settingsUseCase)
	dropHandler = NewDropHandler(dropUseCase)
	communityHandler = NewCommunityHandler(communityUseCase, rateLimiter)
	notifyHandler = NewNotifyHandler(notifyUseCase, rateLimiter)
	adminHandler = NewAdminHandler(adminUseCase, settingsUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetDropHandler() *DropHandler {
	return dropHandler
}

func GetCommunityHandler() *CommunityHandler {
	return communityHandler
}

func GetNotifyHandler() *NotifyHandler {
	return notifyHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}
