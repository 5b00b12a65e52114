package response

import (
	"time"

	"ecommerce-backend/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CartResponse struct {
	ID         string             `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

type CartItemResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"productId"`
	ProductName     string          `json:"productName"`
	ProductPrice    decimal.Decimal `json:"productPrice"`
	ProductImageURL *string         `json:"productImageUrl,omitempty"`
	Quantity        int             `json:"quantity"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// CartToResponse projects the aggregate. Total is derived here on every
// call, never read from storage.
func CartToResponse(cart *entity.Cart, items []*entity.CartItemDetail) CartResponse {
	itemResponses := make([]CartItemResponse, len(items))
	total := decimal.Zero

	for i, item := range items {
		subtotal := item.Subtotal()
		total = total.Add(subtotal)

		itemResponses[i] = CartItemResponse{
			ID:              item.ID.String(),
			ProductID:       item.ProductID.String(),
			ProductName:     item.ProductName,
			ProductPrice:    item.EffectivePrice(),
			ProductImageURL: item.ProductImageURL,
			Quantity:        item.Quantity,
			Subtotal:        subtotal,
		}
	}

	return CartResponse{
		ID:         cart.ID.String(),
		Items:      itemResponses,
		TotalPrice: total,
		UpdatedAt:  cart.UpdatedAt,
	}
}
