package usecase

import (
	"context"
	"fmt"
	"time"

	"ecommerce-backend/internal/client"
	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/dto/response"
	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartNotifier adalah side channel add-to-cart. Best-effort: error dari
// sini di-log lalu dibuang, tidak pernah menggagalkan operasi cart.
type CartNotifier interface {
	ItemAdded(ctx context.Context, event client.CartEvent) error
}

type CartService interface {
	GetCart(ctx context.Context, ident utils.Identity) (*response.CartResponse, error)
	AddItem(ctx context.Context, ident utils.Identity, productID string, quantity int) (*response.CartResponse, error)
	UpdateItemQuantity(ctx context.Context, ident utils.Identity, itemID string, quantity int) (*response.CartResponse, error)
	RemoveItem(ctx context.Context, ident utils.Identity, itemID string) (*response.CartResponse, error)
	Clear(ctx context.Context, ident utils.Identity) error
}

type cartService struct {
	repo     *repository.Repository
	notifier CartNotifier
	log      *zap.Logger
}

func NewCartService(
	repo *repository.Repository,
	notifier CartNotifier,
	log *zap.Logger,
) CartService {
	return &cartService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) GetCart(ctx context.Context, ident utils.Identity) (*response.CartResponse, error) {
	user, err := s.findUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	cart, err := s.getOrCreateCart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return s.project(ctx, cart)
}

func (s *cartService) AddItem(ctx context.Context, ident utils.Identity, productID string, quantity int) (*response.CartResponse, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	prodID, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid product id %s", ErrValidation, productID)
	}

	user, err := s.findUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.Product.FindByID(ctx, prodID)
	if err != nil {
		s.log.Error("Failed to find product for cart", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}

	cart, err := s.getOrCreateCart(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// Merge semantics: product yang sudah ada di cart cuma nambah
	// quantity, tidak pernah bikin row kedua
	existing, err := s.repo.CartItem.FindByCartAndProduct(ctx, cart.ID, product.ID)
	if err != nil {
		return nil, fmt.Errorf("find existing cart item: %w", err)
	}

	if existing != nil {
		if err := s.repo.CartItem.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return nil, fmt.Errorf("merge cart item quantity: %w", err)
		}
	} else {
		item := &entity.CartItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			CartID:    cart.ID,
			ProductID: product.ID,
			Quantity:  quantity,
		}
		if err := s.repo.CartItem.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("add cart item: %w", err)
		}
	}

	if err := s.touch(ctx, cart); err != nil {
		return nil, err
	}

	s.log.Info("Item added to cart",
		zap.String("user_id", user.ID.String()),
		zap.String("product_id", product.ID.String()),
		zap.Int("quantity", quantity))

	// Advisory notification; kegagalan di sini tidak boleh mempengaruhi
	// hasil operasi
	s.notifyItemAdded(ctx, user, product, quantity)

	return s.project(ctx, cart)
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, ident utils.Identity, itemID string, quantity int) (*response.CartResponse, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid item id %s", ErrValidation, itemID)
	}

	cart, err := s.requireCart(ctx, ident)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.CartItem.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	if item == nil || item.CartID != cart.ID {
		return nil, fmt.Errorf("%w: cart item %s", ErrNotFound, itemID)
	}

	// Overwrite, bukan merge
	if err := s.repo.CartItem.UpdateQuantity(ctx, item.ID, quantity); err != nil {
		return nil, fmt.Errorf("update cart item quantity: %w", err)
	}

	if err := s.touch(ctx, cart); err != nil {
		return nil, err
	}

	return s.project(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, ident utils.Identity, itemID string) (*response.CartResponse, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid item id %s", ErrValidation, itemID)
	}

	cart, err := s.requireCart(ctx, ident)
	if err != nil {
		return nil, err
	}

	// Item id yang tidak ada di cart adalah silent no-op
	if err := s.repo.CartItem.Delete(ctx, cart.ID, id); err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}

	if err := s.touch(ctx, cart); err != nil {
		return nil, err
	}

	return s.project(ctx, cart)
}

func (s *cartService) Clear(ctx context.Context, ident utils.Identity) error {
	cart, err := s.requireCart(ctx, ident)
	if err != nil {
		return err
	}

	if err := s.repo.CartItem.DeleteByCartID(ctx, cart.ID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	if err := s.touch(ctx, cart); err != nil {
		return err
	}

	s.log.Info("Cart cleared", zap.String("cart_id", cart.ID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *cartService) findUser(ctx context.Context, ident utils.Identity) (*entity.User, error) {
	user, err := s.repo.User.FindByEmail(ctx, ident.Subject)
	if err != nil {
		s.log.Error("Failed to resolve cart owner", zap.Error(err), zap.String("email", ident.Subject))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, ident.Subject)
	}
	return user, nil
}

// getOrCreateCart lazily creates the user's cart on first access. Idempotent.
func (s *cartService) getOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}
	if cart != nil {
		return cart, nil
	}

	now := time.Now()
	cart = &entity.Cart{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
	}

	if err := s.repo.Cart.Create(ctx, cart); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	s.log.Info("Cart created",
		zap.String("cart_id", cart.ID.String()),
		zap.String("user_id", userID.String()))

	return cart, nil
}

// requireCart resolves the caller's cart; missing cart is NotFound
func (s *cartService) requireCart(ctx context.Context, ident utils.Identity) (*entity.Cart, error) {
	user, err := s.findUser(ctx, ident)
	if err != nil {
		return nil, err
	}

	cart, err := s.repo.Cart.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("find cart: %w", err)
	}
	if cart == nil {
		return nil, fmt.Errorf("%w: cart for user %s", ErrNotFound, ident.Subject)
	}

	return cart, nil
}

func (s *cartService) touch(ctx context.Context, cart *entity.Cart) error {
	now := time.Now()
	if err := s.repo.Cart.Touch(ctx, cart.ID, now); err != nil {
		return fmt.Errorf("touch cart: %w", err)
	}
	cart.UpdatedAt = now
	return nil
}

func (s *cartService) notifyItemAdded(ctx context.Context, user *entity.User, product *entity.Product, quantity int) {
	event := client.CartEvent{
		UserID:      user.ID.String(),
		UserEmail:   user.Email,
		ProductID:   product.ID.String(),
		ProductName: product.Name,
		Quantity:    quantity,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if err := s.notifier.ItemAdded(ctx, event); err != nil {
		// Log but don't fail the cart operation
		s.log.Warn("Failed to send add-to-cart webhook",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
			zap.String("product_id", product.ID.String()))
	}
}

// project builds the cart DTO with per-item subtotals and the derived
// total, recomputed fresh on every call
func (s *cartService) project(ctx context.Context, cart *entity.Cart) (*response.CartResponse, error) {
	items, err := s.repo.CartItem.FindDetailsByCartID(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("load cart items: %w", err)
	}

	resp := response.CartToResponse(cart, items)
	return &resp, nil
}
