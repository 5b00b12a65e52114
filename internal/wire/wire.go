package wire

import (
	"net/http"

	"ecommerce-backend/internal/adaptor"
	"ecommerce-backend/internal/client"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/middleware"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, httpClient *http.Client, logger *zap.Logger) *App {
	// Outbound clients: AI service dan cart webhook share satu http.Client
	aiClient := client.NewAIService(config.AI.BaseURL, httpClient, logger)
	cartWebhook := client.NewCartWebhook(config.Webhook.CartURL, httpClient)

	// Initialize services dan handlers
	service := usecase.NewService(repo, aiClient, cartWebhook, config, logger)
	handler := adaptor.NewHandler(service, aiClient, logger)

	// Setup router
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireProduct(r, handler.Product, config, logger)
	wireCart(r, handler.Cart, config, logger)
	wireChat(r, handler.Chat)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
