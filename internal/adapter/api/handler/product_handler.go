package handler

import (
	"github.com/labstack/echo/v4"

	"dropfit/internal/domain/entity"
	"dropfit/internal/usecase"
	"dropfit/pkg/errors"
	"dropfit/pkg/response"
	"dropfit/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

// productResponse adds the derived stock badge to the stored fields.
type productResponse struct {
	*entity.Product
	StockStatus entity.StockStatus `json:"stock_status"`
}

func toProductResponse(product *entity.Product) productResponse {
	return productResponse{
		Product:     product,
		StockStatus: product.StockStatus(),
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	input := usecase.ListProductsInput{
		Collection: c.QueryParam("collection"),
		DropsOnly:  c.QueryParam("drops") == "true",
		Limit:      pagination.PageSize,
		Offset:     pagination.Offset,
	}

	products, total, err := h.productUseCase.ListProducts(c.Request().Context(), input)
	if err != nil {
		return response.Error(c, err)
	}

	items := make([]productResponse, 0, len(products))
	for _, product := range products {
		items = append(items, toProductResponse(product))
	}

	return response.Paginated(c, items, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toProductResponse(product))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, toProductResponse(product))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.UpdateProduct(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Product deleted"})
}
