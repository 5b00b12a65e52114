package adaptor

import (
	"ecommerce-backend/internal/client"
	"ecommerce-backend/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Product *ProductHandler
	Cart    *CartHandler
	Chat    *ChatHandler
}

func NewHandler(service *usecase.Service, ai *client.AIService, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Product: NewProductHandler(service.Catalog, log),
		Cart:    NewCartHandler(service.Cart, log),
		Chat:    NewChatHandler(ai, log),
	}
}
