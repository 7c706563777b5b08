package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/domain/repository"
	"github.com/innovshop/marketplace/internal/pkg/lock"
)

// SplitterUseCase decomposes a multi-seller order into one order per seller
// identity.
type SplitterUseCase struct {
	orders repository.OrderRepository
	locks  *lock.Keyed
	logger *slog.Logger
	now    func() time.Time
}

// NewSplitterUseCase constructs SplitterUseCase.
func NewSplitterUseCase(orders repository.OrderRepository, locks *lock.Keyed, logger *slog.Logger) *SplitterUseCase {
	return &SplitterUseCase{orders: orders, locks: locks, logger: logger, now: time.Now}
}

// SplitBySeller groups the order's line items by seller identity (items
// without a seller form the platform group) and, when more than one group
// exists, replaces the order with one order per group. Each replacement
// carries the original's non-item fields and creation time, a reference
// suffixed with a sequential counter, and a total equal to the sum of its
// group's line totals. The replacement and the removal of the original commit
// in a single transaction.
//
// Returns the newly created orders, or the order itself when no split is
// needed. An order without items is returned unchanged with a warning.
func (u *SplitterUseCase) SplitBySeller(ctx context.Context, orderID int64) ([]model.Order, error) {
	unlock := u.locks.Lock(orderID)
	defer unlock()

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}

	if len(order.Items) == 0 {
		u.logger.Warn("order has no items to split", slog.String("reference", order.Reference))
		return []model.Order{*order}, nil
	}

	keys, groups := groupItemsBySeller(order.Items)
	if len(keys) <= 1 {
		return []model.Order{*order}, nil
	}

	replacements := make([]repository.SplitOrder, 0, len(keys))
	for i, key := range keys {
		items := groups[key]

		reference, err := u.splitReference(ctx, order.Reference, i+1)
		if err != nil {
			return nil, err
		}

		next := &model.Order{
			UserID:          order.UserID,
			Reference:       reference,
			Status:          order.Status,
			Delivery:        order.Delivery,
			PaymentIntentID: order.PaymentIntentID,
			PaymentMethod:   order.PaymentMethod,
			ShippingMethod:  order.ShippingMethod,
			CreatedAt:       order.CreatedAt,
		}

		itemIDs := make([]int64, 0, len(items))
		for _, item := range items {
			next.TotalAmount = next.TotalAmount.Add(item.TotalLine)
			next.Items = append(next.Items, item)
			itemIDs = append(itemIDs, item.ID)
		}

		replacements = append(replacements, repository.SplitOrder{Order: next, ItemIDs: itemIDs})
	}

	if err := u.orders.ReplaceWithSplit(ctx, order.ID, replacements); err != nil {
		return nil, fmt.Errorf("split order %s: %w", order.Reference, err)
	}

	result := make([]model.Order, 0, len(replacements))
	for _, r := range replacements {
		for i := range r.Order.Items {
			r.Order.Items[i].OrderID = r.Order.ID
		}
		result = append(result, *r.Order)
	}

	u.logger.Info("order split by seller",
		slog.String("reference", order.Reference),
		slog.Int("orders", len(result)),
	)

	return result, nil
}

// splitReference builds "<original>-<counter>", falling back to an appended
// timestamp when the reference is already taken.
func (u *SplitterUseCase) splitReference(ctx context.Context, original string, counter int) (string, error) {
	reference := fmt.Sprintf("%s-%d", original, counter)
	exists, err := u.orders.ReferenceExists(ctx, reference)
	if err != nil {
		return "", fmt.Errorf("check reference %s: %w", reference, err)
	}
	if exists {
		reference = fmt.Sprintf("%s-%d-%d", original, counter, u.now().Unix())
	}
	return reference, nil
}

// groupItemsBySeller partitions items by seller identity, preserving the
// order in which each identity first appears.
func groupItemsBySeller(items []model.OrderItem) ([]int64, map[int64][]model.OrderItem) {
	keys := make([]int64, 0, len(items))
	groups := make(map[int64][]model.OrderItem, len(items))
	for _, item := range items {
		key := item.SellerKey()
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], item)
	}
	return keys, groups
}
