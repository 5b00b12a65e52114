package usecase

import (
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Cart    CartService
}

func NewService(
	repo *repository.Repository,
	verifier FaceVerifier,
	notifier CartNotifier,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, verifier, config, log),
		Catalog: NewCatalogService(repo, log),
		Cart:    NewCartService(repo, notifier, log),
	}
}
