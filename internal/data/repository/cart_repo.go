package repository

import (
	"context"
	"fmt"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CartRepository interface {
	Create(ctx context.Context, cart *entity.Cart) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	Touch(ctx context.Context, cartID uuid.UUID, at time.Time) error
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log,
	}
}

// Create inserts an empty cart for a user
func (cr *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	query := `
		INSERT INTO carts (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := cr.db.Exec(ctx, query,
		cart.ID,
		cart.UserID,
		cart.CreatedAt,
		cart.UpdatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create cart",
			zap.Error(err),
			zap.String("user_id", cart.UserID.String()),
		)
		return fmt.Errorf("create cart for user %s: %w", cart.UserID.String(), err)
	}

	return nil
}

func (cr *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	query := `
		SELECT id, user_id, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`

	var cart entity.Cart
	err := cr.db.QueryRow(ctx, query, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find cart by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find cart by user %s: %w", userID.String(), err)
	}

	return &cart, nil
}

// Touch refreshes the cart's updated_at timestamp
func (cr *cartRepository) Touch(ctx context.Context, cartID uuid.UUID, at time.Time) error {
	query := `UPDATE carts SET updated_at = $2 WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, cartID, at)
	if err != nil {
		cr.log.Error("Failed to touch cart",
			zap.Error(err),
			zap.String("cart_id", cartID.String()),
		)
		return fmt.Errorf("touch cart %s: %w", cartID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cart %s not found", cartID.String())
	}

	return nil
}
