package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/domain/repository"
	"github.com/innovshop/marketplace/internal/pkg/lock"
)

// Actor identifies who is requesting a status mutation. A zero UserID means
// anonymous; Seller is set when the user owns a seller account.
type Actor struct {
	UserID int64
	Admin  bool
	Seller *model.Seller
}

// Anonymous reports whether the actor is unauthenticated.
func (a Actor) Anonymous() bool {
	return a.UserID == 0
}

// LotPatch describes the fields a request asks to modify on a seller lot.
// Fields lists every field named in the request body, including "status".
type LotPatch struct {
	Status *model.LotStatus
	Fields []string
}

// StatusUseCase gates every status mutation on orders and seller lots behind
// actor-role rules and the forward-only lot transition graph.
type StatusUseCase struct {
	orders repository.OrderRepository
	lots   repository.SellerLotRepository
	locks  *lock.Keyed
	logger *slog.Logger
}

// NewStatusUseCase constructs StatusUseCase.
func NewStatusUseCase(orders repository.OrderRepository, lots repository.SellerLotRepository, locks *lock.Keyed, logger *slog.Logger) *StatusUseCase {
	return &StatusUseCase{orders: orders, lots: lots, locks: locks, logger: logger}
}

// ChangeOrderStatus applies an order-level status change if the actor is
// allowed to make it. Admins always are. An approved seller may change the
// status only when the order contains a single seller group consisting
// entirely of their own items; multi-seller orders must be driven through the
// lot API. Buyers have no order-status mutation path.
func (u *StatusUseCase) ChangeOrderStatus(ctx context.Context, actor Actor, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q is not an order status", domainErrors.ErrInvalidStatus, status)
	}
	if actor.Anonymous() {
		return nil, domainErrors.PermissionDenied("you must be authenticated to modify an order")
	}

	unlock := u.locks.Lock(orderID)
	defer unlock()

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !actor.Admin {
		if err := u.authorizeSellerOrderChange(actor, order); err != nil {
			return nil, err
		}
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, fmt.Errorf("update order %s status: %w", order.Reference, err)
	}

	u.logger.Info("order status changed",
		slog.String("reference", order.Reference),
		slog.String("from", string(order.Status)),
		slog.String("to", string(status)),
		slog.Int64("actor", actor.UserID),
	)

	order.Status = status
	return order, nil
}

func (u *StatusUseCase) authorizeSellerOrderChange(actor Actor, order *model.Order) error {
	if actor.Seller == nil {
		if order.UserID == actor.UserID {
			return domainErrors.PermissionDenied("buyers cannot change the order status")
		}
		return domainErrors.PermissionDenied("you can only modify your own orders")
	}
	if !actor.Seller.IsApproved() {
		return domainErrors.PermissionDenied("your seller account is not approved")
	}

	keys, _ := groupItemsBySeller(order.Items)
	if len(keys) > 1 {
		return domainErrors.PermissionDenied("the order spans multiple sellers: change the status of your lot via the seller lot API instead")
	}
	for _, item := range order.Items {
		if item.SellerID == nil || *item.SellerID != actor.Seller.ID {
			return domainErrors.PermissionDenied("you can only modify orders containing your own products")
		}
	}
	return nil
}

// ChangeLotStatus applies a lot-level mutation if the actor is allowed to
// make it. Admins may set any value. The lot's own seller may only move the
// status forward to shipped or delivered, touching no other field. The buyer
// owning the parent order may only cancel a confirmed lot, as the sole field
// changed. Everyone else is rejected.
func (u *StatusUseCase) ChangeLotStatus(ctx context.Context, actor Actor, lotID int64, patch LotPatch) (*model.SellerLot, error) {
	if actor.Anonymous() {
		return nil, domainErrors.PermissionDenied("you must be authenticated to modify an order lot")
	}

	lot, err := u.lots.GetByID(ctx, lotID)
	if err != nil {
		return nil, err
	}

	unlock := u.locks.Lock(lot.OrderID)
	defer unlock()

	if patch.Status != nil && !model.ValidLotStatus(*patch.Status) {
		return nil, fmt.Errorf("%w: %q is not a lot status", domainErrors.ErrInvalidStatus, *patch.Status)
	}

	if actor.Admin {
		return u.applyLotStatus(ctx, lot, patch.Status, actor)
	}

	if actor.Seller.IsApproved() && lot.SellerID != nil && *lot.SellerID == actor.Seller.ID {
		if err := validateSellerLotPatch(lot, patch); err != nil {
			return nil, err
		}
		return u.applyLotStatus(ctx, lot, patch.Status, actor)
	}
	if actor.Seller.IsApproved() {
		return nil, domainErrors.PermissionDenied("you can only modify lots for your own products")
	}

	order, err := u.orders.GetByID(ctx, lot.OrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID == actor.UserID {
		if err := validateBuyerLotPatch(lot, patch); err != nil {
			return nil, err
		}
		return u.applyLotStatus(ctx, lot, patch.Status, actor)
	}

	return nil, domainErrors.PermissionDenied("you do not have access to this order lot")
}

// validateSellerLotPatch enforces the seller rules: only status and the
// update timestamp may change, and the transition must follow
// confirmed -> shipped -> delivered with no skips or reversals.
func validateSellerLotPatch(lot *model.SellerLot, patch LotPatch) error {
	for _, field := range patch.Fields {
		if field == "status" || field == "updatedAt" {
			continue
		}
		return domainErrors.PermissionDenied("sellers cannot modify the %q field of a lot", field)
	}

	if patch.Status == nil {
		return nil
	}
	target := *patch.Status

	if target != model.LotStatusShipped && target != model.LotStatusDelivered {
		return domainErrors.PermissionDenied("sellers can only set the lot status to shipped or delivered")
	}
	if lot.Status == model.LotStatusDelivered && target == model.LotStatusShipped {
		return domainErrors.InvalidTransition("a delivered lot cannot go back to shipped")
	}
	if lot.Status == model.LotStatusConfirmed && target == model.LotStatusDelivered {
		return domainErrors.InvalidTransition("a lot must be shipped before it can be delivered")
	}
	return nil
}

// validateBuyerLotPatch enforces the buyer rules: the status must be the only
// requested change, and the only allowed edge is confirmed -> cancelled.
func validateBuyerLotPatch(lot *model.SellerLot, patch LotPatch) error {
	if len(patch.Fields) != 1 || patch.Fields[0] != "status" || patch.Status == nil {
		return domainErrors.PermissionDenied("you may only change the status of your lot")
	}
	if *patch.Status != model.LotStatusCancelled || lot.Status != model.LotStatusConfirmed {
		return domainErrors.PermissionDenied("you can only cancel your own confirmed lots")
	}
	return nil
}

func (u *StatusUseCase) applyLotStatus(ctx context.Context, lot *model.SellerLot, status *model.LotStatus, actor Actor) (*model.SellerLot, error) {
	if status == nil {
		return lot, nil
	}
	if err := u.lots.UpdateStatus(ctx, lot.ID, *status); err != nil {
		return nil, fmt.Errorf("update lot %d status: %w", lot.ID, err)
	}

	u.logger.Info("lot status changed",
		slog.Int64("lot", lot.ID),
		slog.String("from", string(lot.Status)),
		slog.String("to", string(*status)),
		slog.Int64("actor", actor.UserID),
	)

	lot.Status = *status
	return lot, nil
}
