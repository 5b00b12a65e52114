package repository

import (
	"ecommerce-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Product  ProductRepository
	Cart     CartRepository
	CartItem CartItemRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Product:  NewProductRepository(db, log),
		Cart:     NewCartRepository(db, log),
		CartItem: NewCartItemRepository(db, log),
	}
}
