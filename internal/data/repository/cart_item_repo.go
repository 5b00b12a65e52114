package repository

import (
	"context"
	"fmt"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CartItemRepository interface {
	Create(ctx context.Context, item *entity.CartItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)
	FindByCartAndProduct(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error)
	FindDetailsByCartID(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItemDetail, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, cartID, itemID uuid.UUID) error
	DeleteByCartID(ctx context.Context, cartID uuid.UUID) error
}

type cartItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartItemRepository(db database.PgxIface, log *zap.Logger) CartItemRepository {
	return &cartItemRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new cart item row
func (cir *cartItemRepository) Create(ctx context.Context, item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := cir.db.Exec(ctx, query,
		item.ID,
		item.CartID,
		item.ProductID,
		item.Quantity,
		item.CreatedAt,
	)

	if err != nil {
		cir.log.Error("Failed to create cart item",
			zap.Error(err),
			zap.String("cart_id", item.CartID.String()),
			zap.String("product_id", item.ProductID.String()),
		)
		return fmt.Errorf("create cart item: %w", err)
	}

	return nil
}

func (cir *cartItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, quantity, created_at
		FROM cart_items
		WHERE id = $1
	`

	var item entity.CartItem
	err := cir.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cir.log.Error("Failed to find cart item by ID",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return nil, fmt.Errorf("find cart item %s: %w", id.String(), err)
	}

	return &item, nil
}

// FindByCartAndProduct looks up the single row for (cart, product), if any.
// The merge invariant guarantees at most one.
func (cir *cartItemRepository) FindByCartAndProduct(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, quantity, created_at
		FROM cart_items
		WHERE cart_id = $1 AND product_id = $2
	`

	var item entity.CartItem
	err := cir.db.QueryRow(ctx, query, cartID, productID).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cir.log.Error("Failed to find cart item by cart and product",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("find cart item for cart %s product %s: %w",
			cartID.String(), productID.String(), err)
	}

	return &item, nil
}

// FindDetailsByCartID retrieves cart items joined with product data,
// ordered by insertion time
func (cir *cartItemRepository) FindDetailsByCartID(ctx context.Context, cartID uuid.UUID) ([]*entity.CartItemDetail, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.created_at,
		       p.name, p.price, p.discount_price, p.image_url
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at ASC
	`

	rows, err := cir.db.Query(ctx, query, cartID)
	if err != nil {
		cir.log.Error("Failed to query cart items",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
		)
		return nil, fmt.Errorf("query cart items for cart %s: %w", cartID.String(), err)
	}
	defer rows.Close()

	var items []*entity.CartItemDetail
	for rows.Next() {
		var item entity.CartItemDetail
		err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&item.ProductName,
			&item.ProductPrice,
			&item.ProductDiscountPrice,
			&item.ProductImageURL,
		)
		if err != nil {
			cir.log.Error("Failed to scan cart item row", zap.Error(err))
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		cir.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cart item rows: %w", err)
	}

	return items, nil
}

func (cir *cartItemRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `UPDATE cart_items SET quantity = $2 WHERE id = $1`

	result, err := cir.db.Exec(ctx, query, id, quantity)
	if err != nil {
		cir.log.Error("Failed to update cart item quantity",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return fmt.Errorf("update cart item %s quantity: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cart item %s not found", id.String())
	}

	return nil
}

// Delete removes one item from a cart. Deleting an id that is not in the
// cart is a no-op, not an error.
func (cir *cartItemRepository) Delete(ctx context.Context, cartID, itemID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`

	_, err := cir.db.Exec(ctx, query, itemID, cartID)
	if err != nil {
		cir.log.Error("Failed to delete cart item",
			zap.Error(err),
			zap.String("item_id", itemID.String()),
			zap.String("cart_id", cartID.String()),
		)
		return fmt.Errorf("delete cart item %s: %w", itemID.String(), err)
	}

	return nil
}

// DeleteByCartID empties the cart
func (cir *cartItemRepository) DeleteByCartID(ctx context.Context, cartID uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE cart_id = $1`

	_, err := cir.db.Exec(ctx, query, cartID)
	if err != nil {
		cir.log.Error("Failed to clear cart items",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
		)
		return fmt.Errorf("clear cart %s: %w", cartID.String(), err)
	}

	return nil
}
