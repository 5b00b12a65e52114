package entity

import (
	"github.com/google/uuid"
)

// Cart adalah aggregate per user: satu user satu cart, dibuat lazily
type Cart struct {
	BaseNoDelete
	UserID uuid.UUID `db:"user_id"`
}
