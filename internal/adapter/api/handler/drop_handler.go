package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"dropfit/internal/usecase"
	"dropfit/pkg/errors"
	"dropfit/pkg/response"
)

type DropHandler struct {
	dropUseCase *usecase.DropUseCase
}

func NewDropHandler(dropUseCase *usecase.DropUseCase) *DropHandler {
	return &DropHandler{
		dropUseCase: dropUseCase,
	}
}

func (h *DropHandler) ListDrops(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	drops, err := h.dropUseCase.ListDrops(c.Request().Context(), c.QueryParam("status"), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, drops)
}

// NextDrop feeds the storefront countdown. Data is null when no drop is
// scheduled.
func (h *DropHandler) NextDrop(c echo.Context) error {
	drop, err := h.dropUseCase.NextDrop(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, drop)
}

func (h *DropHandler) GetDrop(c echo.Context) error {
	drop, err := h.dropUseCase.GetDrop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, drop)
}

func (h *DropHandler) CreateDrop(c echo.Context) error {
	var req usecase.CreateDropInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	drop, err := h.dropUseCase.CreateDrop(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, drop)
}

func (h *DropHandler) UpdateDrop(c echo.Context) error {
	var req usecase.CreateDropInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	drop, err := h.dropUseCase.UpdateDrop(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, drop)
}

func (h *DropHandler) Announce(c echo.Context) error {
	count, err := h.dropUseCase.Announce(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"recipients": count})
}
