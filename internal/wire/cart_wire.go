package wire

import (
	"ecommerce-backend/internal/adaptor"
	"ecommerce-backend/pkg/middleware"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Semua route cart butuh auth; identity user diambil dari token
	r.Route("/api/cart", func(cr chi.Router) {
		cr.Use(middleware.Auth(config.JWT, log))

		cr.Get("/", cartHandler.GetCart)
		cr.Post("/items", cartHandler.AddItem)
		cr.Put("/items/{itemId}", cartHandler.UpdateItem)
		cr.Delete("/items/{itemId}", cartHandler.RemoveItem)
		cr.Delete("/", cartHandler.Clear)
	})
}
