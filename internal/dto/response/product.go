package response

import (
	"ecommerce-backend/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	ImageURL      *string          `json:"imageUrl,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Stock         int              `json:"stock"`
	Active        bool             `json:"active"`
}

// Helper converters
func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            product.ID.String(),
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		DiscountPrice: product.DiscountPrice,
		ImageURL:      product.ImageURL,
		Category:      product.Category,
		Stock:         product.Stock,
		Active:        product.Active,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, product := range products {
		responses[i] = ProductToResponse(product)
	}
	return responses
}

// ProductImage membawa bytes gambar plus content type untuk direct serving
type ProductImage struct {
	Data        []byte
	ContentType string
}
