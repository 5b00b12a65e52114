package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem hidup di dalam cart; maksimal satu row per (cart, product)
type CartItem struct {
	BaseSimple
	CartID    uuid.UUID `db:"cart_id"`
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`
}

// CartItemDetail adalah cart item plus kolom product hasil join,
// dipakai untuk projection dan hitung total
type CartItemDetail struct {
	CartItem
	ProductName          string           `db:"product_name"`
	ProductPrice         decimal.Decimal  `db:"product_price"`
	ProductDiscountPrice *decimal.Decimal `db:"product_discount_price"`
	ProductImageURL      *string          `db:"product_image_url"`
}

// EffectivePrice is the discount price when set, otherwise the base price
func (d *CartItemDetail) EffectivePrice() decimal.Decimal {
	if d.ProductDiscountPrice != nil {
		return *d.ProductDiscountPrice
	}
	return d.ProductPrice
}

// Subtotal = quantity x effective price
func (d *CartItemDetail) Subtotal() decimal.Decimal {
	return d.EffectivePrice().Mul(decimal.NewFromInt(int64(d.Quantity)))
}
