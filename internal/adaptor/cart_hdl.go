package adaptor

import (
	"net/http"
	"strconv"

	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ident, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cart, err := h.service.GetCart(r.Context(), ident)
	if err != nil {
		handleServiceError(w, h.log, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "Cart retrieved successfully", cart)
}

// AddItem handles POST /api/cart/items?productId=&quantity=
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ident, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()

	productID := query.Get("productId")
	if productID == "" {
		utils.ResponseBadRequest(w, "productId is required", nil)
		return
	}

	quantity, err := strconv.Atoi(query.Get("quantity"))
	if err != nil {
		utils.ResponseBadRequest(w, "quantity must be an integer", nil)
		return
	}

	cart, err := h.service.AddItem(r.Context(), ident, productID, quantity)
	if err != nil {
		handleServiceError(w, h.log, err, "add cart item")
		return
	}

	utils.ResponseSuccess(w, "Item added to cart", cart)
}

// UpdateItem handles PUT /api/cart/items/{itemId}?quantity=
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ident, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Item ID is required", nil)
		return
	}

	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		utils.ResponseBadRequest(w, "quantity must be an integer", nil)
		return
	}

	cart, err := h.service.UpdateItemQuantity(r.Context(), ident, itemID, quantity)
	if err != nil {
		handleServiceError(w, h.log, err, "update cart item")
		return
	}

	utils.ResponseSuccess(w, "Cart item updated", cart)
}

// RemoveItem handles DELETE /api/cart/items/{itemId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ident, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	itemID := chi.URLParam(r, "itemId")
	if itemID == "" {
		utils.ResponseBadRequest(w, "Item ID is required", nil)
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), ident, itemID)
	if err != nil {
		handleServiceError(w, h.log, err, "remove cart item")
		return
	}

	utils.ResponseSuccess(w, "Item removed from cart", cart)
}

// Clear handles DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ident, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Clear(r.Context(), ident); err != nil {
		handleServiceError(w, h.log, err, "clear cart")
		return
	}

	utils.ResponseSuccess(w, "Cart cleared", nil)
}
