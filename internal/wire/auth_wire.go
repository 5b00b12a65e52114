package wire

import (
	"ecommerce-backend/internal/adaptor"
	"ecommerce-backend/pkg/middleware"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/biometric-login", authHandler.BiometricLogin)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.Auth(config.JWT, log)).Post("/api/auth/register-face", authHandler.RegisterFace)
}
