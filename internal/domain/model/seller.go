package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellerStatus describes the onboarding state of a seller account.
type SellerStatus string

const (
	SellerStatusPending   SellerStatus = "pending"
	SellerStatusApproved  SellerStatus = "approved"
	SellerStatusSuspended SellerStatus = "suspended"
	SellerStatusRejected  SellerStatus = "rejected"
)

// ValidSellerStatus reports whether s is a known seller status value.
func ValidSellerStatus(s SellerStatus) bool {
	switch s {
	case SellerStatusPending, SellerStatusApproved, SellerStatusSuspended, SellerStatusRejected:
		return true
	}
	return false
}

// Seller is a third-party shop owned by a user account.
type Seller struct {
	ID            int64
	UserID        int64
	ShopName      string
	Slug          string
	Description   string
	Country       string
	City          string
	IBAN          string
	Status        SellerStatus
	RatingAverage *decimal.Decimal
	RatingCount   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsApproved reports whether the seller may act on orders and lots.
func (s *Seller) IsApproved() bool {
	return s != nil && s.Status == SellerStatusApproved
}
