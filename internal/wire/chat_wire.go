package wire

import (
	"ecommerce-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireChat(
	r chi.Router,
	chatHandler *adaptor.ChatHandler,
) {
	// Proxy ke AI service, tanpa auth (sama seperti chat widget di frontend)
	r.Post("/api/chat/generate", chatHandler.Generate)
	r.Post("/api/chat/voice", chatHandler.Voice)
}
