package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/dto/response"
	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultImageContentType dipakai kalau image disimpan tanpa content type
const defaultImageContentType = "image/jpeg"

type CatalogService interface {
	ListActive(ctx context.Context) ([]response.ProductResponse, error)
	GetByID(ctx context.Context, productID string) (*response.ProductResponse, error)
	ListByCategory(ctx context.Context, category string) ([]response.ProductResponse, error)
	Search(ctx context.Context, query string) ([]response.ProductResponse, error)
	ListOffers(ctx context.Context) ([]response.ProductResponse, error)
	GetImage(ctx context.Context, productID string) (*response.ProductImage, error)
	Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	Update(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error)
	SoftDelete(ctx context.Context, productID string) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(
	repo *repository.Repository,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListActive(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list active products", zap.Error(err))
		return nil, fmt.Errorf("list active products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

// GetByID returns any product by id, soft-deleted included
func (s *catalogService) GetByID(ctx context.Context, productID string) (*response.ProductResponse, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *catalogService) ListByCategory(ctx context.Context, category string) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindByCategory(ctx, category)
	if err != nil {
		s.log.Error("Failed to list products by category",
			zap.Error(err),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("list products by category: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *catalogService) Search(ctx context.Context, query string) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.SearchByName(ctx, query)
	if err != nil {
		s.log.Error("Failed to search products",
			zap.Error(err),
			zap.String("query", query),
		)
		return nil, fmt.Errorf("search products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *catalogService) ListOffers(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindWithDiscount(ctx)
	if err != nil {
		s.log.Error("Failed to list offers", zap.Error(err))
		return nil, fmt.Errorf("list offers: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *catalogService) GetImage(ctx context.Context, productID string) (*response.ProductImage, error) {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if len(product.ImageData) == 0 {
		return nil, fmt.Errorf("%w: product %s has no image", ErrNotFound, productID)
	}

	contentType := defaultImageContentType
	if product.ImageContentType != nil && *product.ImageContentType != "" {
		contentType = *product.ImageContentType
	}

	return &response.ProductImage{
		Data:        product.ImageData,
		ContentType: contentType,
	}, nil
}

func (s *catalogService) Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if err := s.validateProductRequest(req); err != nil {
		return nil, err
	}

	imageData, err := decodeImage(req.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: imageBase64 is not valid base64", ErrValidation)
	}

	now := time.Now()
	product := &entity.Product{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		DiscountPrice:    req.DiscountPrice,
		ImageURL:         req.ImageURL,
		ImageData:        imageData,
		ImageContentType: req.ImageContentType,
		Category:         req.Category,
		Stock:            req.Stock,
		Active:           true, // always active on creation
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// Update does full field replacement, active flag tidak tersentuh
func (s *catalogService) Update(ctx context.Context, productID string, req *request.ProductRequest) (*response.ProductResponse, error) {
	if err := s.validateProductRequest(req); err != nil {
		return nil, err
	}

	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	imageData, err := decodeImage(req.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: imageBase64 is not valid base64", ErrValidation)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.DiscountPrice = req.DiscountPrice
	product.ImageURL = req.ImageURL
	product.Category = req.Category
	product.Stock = req.Stock
	if imageData != nil {
		product.ImageData = imageData
		product.ImageContentType = req.ImageContentType
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.log.Info("Product updated", zap.String("product_id", productID))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *catalogService) SoftDelete(ctx context.Context, productID string) error {
	product, err := s.findProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.repo.Product.SoftDelete(ctx, product.ID); err != nil {
		s.log.Error("Failed to soft delete product", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("soft delete product: %w", err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

func (s *catalogService) findProduct(ctx context.Context, productID string) (*entity.Product, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id %s", ErrValidation, productID)
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}

	return product, nil
}

func (s *catalogService) validateProductRequest(req *request.ProductRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Product validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if req.DiscountPrice != nil && req.DiscountPrice.IsNegative() {
		return fmt.Errorf("%w: discount price must not be negative", ErrValidation)
	}

	return nil
}

func decodeImage(imageBase64 *string) ([]byte, error) {
	if imageBase64 == nil || *imageBase64 == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(*imageBase64)
}
