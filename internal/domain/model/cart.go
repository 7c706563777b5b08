package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the checkout source. Its items are snapshotted into order items at
// order placement.
type Cart struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Items     []CartItem
}

// CartItem references a live product together with the quantity and variant
// the buyer picked. UnitPrice is the price captured when the item was added.
type CartItem struct {
	ID            int64
	CartID        int64
	ProductID     int64
	ProductName   string
	SellerID      *int64
	UnitPrice     decimal.Decimal
	Quantity      int
	SelectedColor *string
	SelectedSize  *string
}
