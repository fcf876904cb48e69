package handler

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"dropfit/internal/cart"
	"dropfit/internal/usecase"
	"dropfit/pkg/errors"
	"dropfit/pkg/response"
)

const cartSessionName = "dropfit_session"

// CartHandler keeps the checkout cart in a cookie session, one cart per
// browser session. It is constructed directly rather than through Setup
// because it owns the session store.
type CartHandler struct {
	sessions       sessions.Store
	productUseCase *usecase.ProductUseCase
}

var cartHandler *CartHandler

func NewCartHandler(sessionSecret string, productUseCase *usecase.ProductUseCase) *CartHandler {
	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode

	return &CartHandler{
		sessions:       store,
		productUseCase: productUseCase,
	}
}

func SetupCartHandler(sessionSecret string, productUseCase *usecase.ProductUseCase) {
	cartHandler = NewCartHandler(sessionSecret, productUseCase)
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

// load rebuilds the cart from the caller's session. Get ignores decode errors
// and returns a fresh session, matching the cart's tolerant-load behavior.
func (h *CartHandler) load(c echo.Context) *cart.Cart {
	session, _ := h.sessions.Get(c.Request(), cartSessionName)
	store := cart.NewSessionStore(session, c.Request(), c.Response())
	return cart.New(store)
}

type cartResponse struct {
	Items    []cart.Item `json:"items"`
	Count    int         `json:"count"`
	Subtotal int64       `json:"subtotal"`
	Open     bool        `json:"open"`
}

func toCartResponse(c *cart.Cart) cartResponse {
	return cartResponse{
		Items:    c.Items(),
		Count:    c.ItemCount(),
		Subtotal: c.Subtotal(),
		Open:     c.IsOpen(),
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	return response.Success(c, toCartResponse(h.load(c)))
}

// AddItem snapshots the product server-side so the stored line always carries
// the real price, never one supplied by the client.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req struct {
		ProductID string `json:"product_id" validate:"required"`
		Size      string `json:"size" validate:"required"`
		Quantity  int    `json:"quantity" validate:"min=0"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.GetProduct(c.Request().Context(), req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	shoppingCart := h.load(c)
	shoppingCart.Add(cart.Item{
		ProductID: product.ID,
		Title:     product.Title,
		Image:     image,
		Size:      req.Size,
		Price:     product.Price,
		Quantity:  req.Quantity,
	})

	return response.Success(c, toCartResponse(shoppingCart))
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req struct {
		ProductID string `json:"product_id" validate:"required"`
		Size      string `json:"size" validate:"required"`
		Quantity  int    `json:"quantity" validate:"min=0"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	shoppingCart := h.load(c)
	shoppingCart.UpdateQuantity(req.ProductID, req.Size, req.Quantity)

	return response.Success(c, toCartResponse(shoppingCart))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	shoppingCart := h.load(c)
	shoppingCart.Remove(c.Param("productId"), c.QueryParam("size"))

	return response.Success(c, toCartResponse(shoppingCart))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	shoppingCart := h.load(c)
	shoppingCart.Clear()

	return response.Success(c, toCartResponse(shoppingCart))
}
