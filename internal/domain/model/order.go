package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the fulfillment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status value.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// DeliveryAddress is the address snapshot copied onto an order at checkout.
// It is never re-derived from the buyer's address book afterwards.
type DeliveryAddress struct {
	FirstName string
	LastName  string
	Street    string
	ZipCode   string
	City      string
	Country   string
	Phone     string
}

// Order is a purchase transaction owning its line items and seller lots.
type Order struct {
	ID              int64
	UserID          int64
	Reference       string
	Status          OrderStatus
	TotalAmount     decimal.Decimal
	Delivery        DeliveryAddress
	PaymentIntentID *string
	PaymentMethod   string
	ShippingMethod  string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItem
	Lots  []SellerLot
}

// PlatformSellerKey groups line items sold directly by the platform.
const PlatformSellerKey int64 = 0

// OrderItem is one product line within an order. The price and product name
// are snapshots taken at order time; SellerID is denormalized from the
// product and nil for platform-direct sales.
type OrderItem struct {
	ID            int64
	OrderID       int64
	ProductID     *int64
	SellerID      *int64
	ProductName   string
	UnitPrice     decimal.Decimal
	Quantity      int
	TotalLine     decimal.Decimal
	SelectedColor *string
	SelectedSize  *string
}

// SellerKey returns the grouping key for the item's seller identity, with
// PlatformSellerKey standing in for items without a seller.
func (i OrderItem) SellerKey() int64 {
	if i.SellerID == nil {
		return PlatformSellerKey
	}
	return *i.SellerID
}
