package model

import "time"

// LotStatus describes the independent lifecycle of a seller lot.
type LotStatus string

const (
	LotStatusConfirmed LotStatus = "confirmed"
	LotStatusShipped   LotStatus = "shipped"
	LotStatusDelivered LotStatus = "delivered"
	LotStatusCancelled LotStatus = "cancelled"
)

// ValidLotStatus reports whether s is a known lot status value.
func ValidLotStatus(s LotStatus) bool {
	switch s {
	case LotStatusConfirmed, LotStatusShipped, LotStatusDelivered, LotStatusCancelled:
		return true
	}
	return false
}

// SellerLot is a per-seller fulfillment subdivision of one order. A nil
// SellerID marks the platform-direct lot. At most one lot exists per distinct
// seller identity per order.
type SellerLot struct {
	ID        int64
	OrderID   int64
	SellerID  *int64
	Status    LotStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SellerKey returns the lot's seller grouping key, PlatformSellerKey when the
// lot belongs to the platform.
func (l SellerLot) SellerKey() int64 {
	if l.SellerID == nil {
		return PlatformSellerKey
	}
	return *l.SellerID
}
