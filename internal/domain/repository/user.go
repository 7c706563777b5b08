package repository

import (
	"context"

	"github.com/innovshop/marketplace/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// UpdateRoles rewrites the stored (raw) role list.
	UpdateRoles(ctx context.Context, userID int64, roles []model.Role) error
}
