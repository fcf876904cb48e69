package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"dropfit/internal/domain/entity"
	"dropfit/internal/usecase"
	"dropfit/pkg/errors"
	"dropfit/pkg/response"
)

type AdminHandler struct {
	adminUseCase    *usecase.AdminUseCase
	settingsUseCase *usecase.SettingsUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase, settingsUseCase *usecase.SettingsUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase:    adminUseCase,
		settingsUseCase: settingsUseCase,
	}
}

func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.adminUseCase.GetDashboardStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *AdminHandler) ExportOrders(c echo.Context) error {
	data, filename, err := h.adminUseCase.ExportOrdersCSV(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *AdminHandler) ExportUsers(c echo.Context) error {
	data, filename, err := h.adminUseCase.ExportUsersCSV(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (h *AdminHandler) GetDeliverySettings(c echo.Context) error {
	settings, err := h.settingsUseCase.GetDelivery(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}

func (h *AdminHandler) UpdateDeliverySettings(c echo.Context) error {
	var req struct {
		BaseCharge            int64    `json:"base_charge" validate:"min=0"`
		FreeDeliveryThreshold int64    `json:"free_delivery_threshold" validate:"min=0"`
		RemoteAreaCharge      int64    `json:"remote_area_charge" validate:"min=0"`
		RemoteAreas           []string `json:"remote_areas"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	settings := entity.DeliverySettings{
		BaseCharge:            req.BaseCharge,
		FreeDeliveryThreshold: req.FreeDeliveryThreshold,
		RemoteAreaCharge:      req.RemoteAreaCharge,
		RemoteAreas:           req.RemoteAreas,
	}

	if err := h.settingsUseCase.UpdateDelivery(c.Request().Context(), settings); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}
