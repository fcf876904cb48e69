package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"dropfit/internal/infrastructure/ratelimit"
	"dropfit/internal/usecase"
	"dropfit/pkg/errors"
	"dropfit/pkg/response"
)

type CommunityHandler struct {
	communityUseCase *usecase.CommunityUseCase
	rateLimiter      *ratelimit.RateLimiter
}

func NewCommunityHandler(communityUseCase *usecase.CommunityUseCase, rateLimiter *ratelimit.RateLimiter) *CommunityHandler {
	return &CommunityHandler{
		communityUseCase: communityUseCase,
		rateLimiter:      rateLimiter,
	}
}

func (h *CommunityHandler) ListPosts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	posts, err := h.communityUseCase.ListPosts(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, posts)
}

// CreatePost accepts a multipart form with name, caption and photo fields.
// Posting requires a session and is rate limited per user.
func (h *CommunityHandler) CreatePost(c echo.Context) error {
	uid := c.Get("uid").(string)

	if allowed, retryAfter := h.rateLimiter.Allow(uid, "community_post"); !allowed {
		return response.Error(c, errors.New(
			"RATE_LIMITED",
			"Too many posts, try again in "+retryAfter.Round(time.Second).String(),
			http.StatusTooManyRequests, nil,
		))
	}

	name := c.FormValue("name")
	caption := c.FormValue("caption")

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return response.Error(c, errors.BadRequest("A photo is required", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Could not read uploaded photo", err))
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	post, err := h.communityUseCase.CreatePost(c.Request().Context(), name, caption, file, contentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}
