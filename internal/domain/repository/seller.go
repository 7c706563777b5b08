package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/innovshop/marketplace/internal/domain/model"
)

// SellerRepository describes persistence operations for seller accounts.
type SellerRepository interface {
	Create(ctx context.Context, seller *model.Seller) error
	GetByID(ctx context.Context, id int64) (*model.Seller, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Seller, error)
	UpdateStatus(ctx context.Context, sellerID int64, status model.SellerStatus) error
	UpdateRating(ctx context.Context, sellerID int64, average *decimal.Decimal, count int) error
}
