package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/domain/repository"
	"github.com/innovshop/marketplace/internal/pkg/lock"
)

// LotUseCase materializes one seller lot per distinct seller identity on an
// order.
type LotUseCase struct {
	orders repository.OrderRepository
	lots   repository.SellerLotRepository
	locks  *lock.Keyed
	logger *slog.Logger
}

// NewLotUseCase constructs LotUseCase.
func NewLotUseCase(orders repository.OrderRepository, lots repository.SellerLotRepository, locks *lock.Keyed, logger *slog.Logger) *LotUseCase {
	return &LotUseCase{orders: orders, lots: lots, locks: locks, logger: logger}
}

// CreateLots ensures exactly one lot per distinct seller group exists for the
// order, each created in status confirmed. The call is idempotent: when the
// order already has lots, nothing is created.
func (u *LotUseCase) CreateLots(ctx context.Context, orderID int64) ([]model.SellerLot, error) {
	unlock := u.locks.Lock(orderID)
	defer unlock()

	existing, err := u.lots.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list lots for order %d: %w", orderID, err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}

	keys, groups := groupItemsBySeller(order.Items)
	lots := make([]model.SellerLot, 0, len(keys))
	for _, key := range keys {
		lot := model.SellerLot{
			OrderID: order.ID,
			Status:  model.LotStatusConfirmed,
		}
		if key != model.PlatformSellerKey {
			lot.SellerID = groups[key][0].SellerID
		}
		lots = append(lots, lot)
	}

	created, err := u.lots.CreateBatch(ctx, lots)
	if err != nil {
		return nil, fmt.Errorf("create lots for order %s: %w", order.Reference, err)
	}

	u.logger.Info("seller lots created",
		slog.String("reference", order.Reference),
		slog.Int("lots", len(created)),
	)

	return created, nil
}
