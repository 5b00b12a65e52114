package request

import (
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name             string           `json:"name" validate:"required,min=1,max=200"`
	Description      *string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price            decimal.Decimal  `json:"price"`
	DiscountPrice    *decimal.Decimal `json:"discountPrice,omitempty"`
	ImageURL         *string          `json:"imageUrl,omitempty"`
	ImageBase64      *string          `json:"imageBase64,omitempty"`
	ImageContentType *string          `json:"imageContentType,omitempty"`
	Category         *string          `json:"category,omitempty" validate:"omitempty,max=100"`
	Stock            int              `json:"stock" validate:"min=0"`
}
