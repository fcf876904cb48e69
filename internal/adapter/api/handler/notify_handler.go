package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"dropfit/internal/infrastructure/ratelimit"
	"dropfit/internal/usecase"
	"dropfit/pkg/errors"
	"dropfit/pkg/response"
)

type NotifyHandler struct {
	notifyUseCase *usecase.NotifyUseCase
	rateLimiter   *ratelimit.RateLimiter
}

func NewNotifyHandler(notifyUseCase *usecase.NotifyUseCase, rateLimiter *ratelimit.RateLimiter) *NotifyHandler {
	return &NotifyHandler{
		notifyUseCase: notifyUseCase,
		rateLimiter:   rateLimiter,
	}
}

func (h *NotifyHandler) Join(c echo.Context) error {
	if allowed, retryAfter := h.rateLimiter.Allow(c.RealIP(), "notify_join"); !allowed {
		return response.Error(c, errors.New(
			"RATE_LIMITED",
			"Too many signups, try again in "+retryAfter.Round(time.Second).String(),
			http.StatusTooManyRequests, nil,
		))
	}

	var req usecase.JoinNotifyInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	entry, err := h.notifyUseCase.Join(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, entry)
}

func (h *NotifyHandler) List(c echo.Context) error {
	entries, err := h.notifyUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, entries)
}
