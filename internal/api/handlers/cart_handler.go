package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Cheertaboi/storefront-checkout/internal/cart"
	"github.com/Cheertaboi/storefront-checkout/internal/models"
	"github.com/Cheertaboi/storefront-checkout/internal/service"
)

type CartHandler struct {
	service *service.CartService
}

func NewCartHandler(svc *service.CartService) *CartHandler {
	return &CartHandler{service: svc}
}

type cartResponse struct {
	ID    string            `json:"id"`
	Items []models.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
	Count int               `json:"count"`
}

func toCartResponse(c models.Cart) cartResponse {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return cartResponse{ID: c.ID, Items: c.Items, Total: cart.From(c).Total(), Count: n}
}

type addItemRequest struct {
	ProductID int `json:"product_id"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CreateCart handles POST /carts
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Create(r.Context())
	if err != nil {
		writeError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusCreated, toCartResponse(c))
}

// GetCart handles GET /carts/{cartID}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), chi.URLParam(r, "cartID"))
	h.respond(w, r, c, err)
}

// AddItem handles POST /carts/{cartID}/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid_body")
		return
	}
	c, err := h.service.AddItem(r.Context(), chi.URLParam(r, "cartID"), req.ProductID)
	h.respond(w, r, c, err)
}

// UpdateItem handles PUT /carts/{cartID}/items/{productID}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := intParam(r, "productID")
	if !ok {
		badRequest(w, "invalid product id")
		return
	}
	var req updateQuantityRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid_body")
		return
	}
	c, err := h.service.UpdateQuantity(r.Context(), chi.URLParam(r, "cartID"), productID, req.Quantity)
	h.respond(w, r, c, err)
}

// RemoveItem handles DELETE /carts/{cartID}/items/{productID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := intParam(r, "productID")
	if !ok {
		badRequest(w, "invalid product id")
		return
	}
	c, err := h.service.RemoveItem(r.Context(), chi.URLParam(r, "cartID"), productID)
	h.respond(w, r, c, err)
}

// ClearCart handles DELETE /carts/{cartID}/items
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Clear(r.Context(), chi.URLParam(r, "cartID"))
	h.respond(w, r, c, err)
}

func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, c models.Cart, err error) {
	if err != nil {
		writeError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}
