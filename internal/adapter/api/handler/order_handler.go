package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"dropfit/internal/domain/entity"
	"dropfit/internal/usecase"
	"dropfit/pkg/errors"
	"dropfit/pkg/response"
	"dropfit/pkg/utils"
)

type OrderHandler struct {
	orderUseCase    *usecase.OrderUseCase
	settingsUseCase *usecase.SettingsUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase, settingsUseCase *usecase.SettingsUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase:    orderUseCase,
		settingsUseCase: settingsUseCase,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	uid := c.Get("uid").(string)
	role, _ := c.Get("role").(string)

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), c.Param("id"), uid, role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListMyOrders(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListOrders(c.Request().Context(), c.QueryParam("status"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.PageSize)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

// QuoteDelivery prices delivery for a prospective order so checkout can show
// the charge before placement.
func (h *OrderHandler) QuoteDelivery(c echo.Context) error {
	subtotal, err := strconv.ParseInt(c.QueryParam("subtotal"), 10, 64)
	if err != nil || subtotal < 0 {
		return response.Error(c, errors.BadRequest("subtotal must be a non-negative integer", err))
	}
	city := c.QueryParam("city")

	settings, err := h.settingsUseCase.GetDelivery(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	charge := usecase.DeliveryCharge(subtotal, city, settings)

	return response.Success(c, map[string]int64{
		"subtotal":        subtotal,
		"delivery_charge": charge,
		"total":           subtotal + charge,
	})
}
