package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/innovshop/marketplace/internal/domain/model"
)

// ProductRepository describes the catalog operations the core depends on.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	UpdateRating(ctx context.Context, productID int64, average *decimal.Decimal, count int) error
	// SetPublishedBySeller flips visibility of every product of one seller.
	SetPublishedBySeller(ctx context.Context, sellerID int64, published bool) error
}

// ReviewRepository describes persistence operations with product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.ProductReview) error
	Update(ctx context.Context, review *model.ProductReview) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*model.ProductReview, error)
	GetByUserAndProduct(ctx context.Context, userID, productID int64) (*model.ProductReview, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.ProductReview, error)
	// ListBySeller returns reviews across all products of one seller.
	ListBySeller(ctx context.Context, sellerID int64) ([]model.ProductReview, error)
}

// CartRepository loads checkout sources.
type CartRepository interface {
	// GetByID loads the cart with items, product names and seller references
	// resolved.
	GetByID(ctx context.Context, id int64) (*model.Cart, error)
}
