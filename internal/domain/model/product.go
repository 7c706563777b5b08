package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. SellerID is nil for platform-direct products.
// RatingAverage/RatingCount are derived from the live review set and nil/0
// when no reviews exist.
type Product struct {
	ID            int64
	SellerID      *int64
	Name          string
	Price         decimal.Decimal
	IsPublished   bool
	RatingAverage *decimal.Decimal
	RatingCount   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductReview is one user's rating of a product. A user may review a
// product at most once.
type ProductReview struct {
	ID        int64
	ProductID int64
	UserID    int64
	Rating    int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
