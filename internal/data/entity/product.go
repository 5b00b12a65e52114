package entity

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	BaseNoDelete
	Name             string           `db:"name"`
	Description      *string          `db:"description"`
	Price            decimal.Decimal  `db:"price"`
	DiscountPrice    *decimal.Decimal `db:"discount_price"`
	ImageURL         *string          `db:"image_url"`
	ImageData        []byte           `db:"image_data"`
	ImageContentType *string          `db:"image_content_type"`
	Category         *string          `db:"category"`
	Stock            int              `db:"stock"`
	// Soft delete: delete hanya clear flag ini, row tetap ada
	Active bool `db:"active"`
}

// EffectivePrice is the discount price when set, otherwise the base price
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
