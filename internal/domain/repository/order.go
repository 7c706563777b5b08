package repository

import (
	"context"

	"github.com/innovshop/marketplace/internal/domain/model"
)

// SplitOrder pairs a replacement order built by the splitter with the ids of
// the original line items it takes ownership of.
type SplitOrder struct {
	Order   *model.Order
	ItemIDs []int64
}

// OrderRepository describes persistence operations with orders and their items.
type OrderRepository interface {
	// Create persists the order together with its items, filling generated ids.
	Create(ctx context.Context, order *model.Order) error
	// GetByID loads the order with items and lots.
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByReference(ctx context.Context, reference string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ReferenceExists(ctx context.Context, reference string) (bool, error)
	// ReplaceWithSplit atomically persists the replacement orders, reassigns
	// the listed items to them, and removes the original order. Either all of
	// it commits or none of it does.
	ReplaceWithSplit(ctx context.Context, originalID int64, replacements []SplitOrder) error
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	// ConfirmPayment stores the payment intent and forces confirmed status.
	ConfirmPayment(ctx context.Context, orderID int64, paymentIntentID string) error
}
