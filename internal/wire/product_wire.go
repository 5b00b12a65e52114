package wire

import (
	"ecommerce-backend/internal/adaptor"
	"ecommerce-backend/pkg/middleware"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/products", func(pr chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		pr.Get("/", productHandler.ListActive)
		pr.Get("/search", productHandler.Search)
		pr.Get("/offers", productHandler.ListOffers)
		pr.Get("/category/{category}", productHandler.ListByCategory)
		pr.Get("/{id}", productHandler.GetByID)
		pr.Get("/{id}/image", productHandler.GetImage)

		// ==================== ADMIN ROUTES ====================
		pr.Group(func(admin chi.Router) {
			admin.Use(middleware.Auth(config.JWT, log))
			admin.Use(middleware.Admin(log))

			admin.Post("/", productHandler.Create)
			admin.Put("/{id}", productHandler.Update)
			admin.Delete("/{id}", productHandler.Delete)
		})
	})
}
