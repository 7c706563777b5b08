package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/domain/repository"
)

// CheckoutUseCase turns a cart into orders: item snapshot, totals, split by
// seller, lots, payment confirmation.
type CheckoutUseCase struct {
	carts    repository.CartRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	splitter *SplitterUseCase
	lots     *LotUseCase
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
	newRef   func(time.Time) string
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(carts repository.CartRepository, orders repository.OrderRepository, users repository.UserRepository, splitter *SplitterUseCase, lots *LotUseCase, notifier Notifier, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:    carts,
		orders:   orders,
		users:    users,
		splitter: splitter,
		lots:     lots,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
		newRef:   newOrderReference,
	}
}

// newOrderReference builds a globally unique human-readable reference.
func newOrderReference(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	return fmt.Sprintf("ORD-%d-%s", now.Year(), suffix)
}

// PlaceOrder snapshots the cart into a new order (prices, product names,
// seller references, variants copied as of now), persists it, splits it by
// seller and creates lots for every resulting order. Returns the orders the
// buyer ends up with.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, userID, cartID int64, delivery model.DeliveryAddress, paymentMethod, shippingMethod string) ([]model.Order, error) {
	cart, err := u.carts.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if cart.UserID != userID {
		return nil, domainErrors.PermissionDenied("you can only check out your own cart")
	}
	if len(cart.Items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}

	now := u.now()
	order := &model.Order{
		UserID:         userID,
		Reference:      u.newRef(now),
		Status:         model.OrderStatusConfirmed,
		Delivery:       delivery,
		PaymentMethod:  paymentMethod,
		ShippingMethod: shippingMethod,
		CreatedAt:      now,
	}

	total := decimal.Zero
	for _, ci := range cart.Items {
		productID := ci.ProductID
		line := ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
		order.Items = append(order.Items, model.OrderItem{
			ProductID:     &productID,
			SellerID:      ci.SellerID,
			ProductName:   ci.ProductName,
			UnitPrice:     ci.UnitPrice,
			Quantity:      ci.Quantity,
			TotalLine:     line,
			SelectedColor: ci.SelectedColor,
			SelectedSize:  ci.SelectedSize,
		})
		total = total.Add(line)
	}
	order.TotalAmount = total

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order %s: %w", order.Reference, err)
	}

	orders, err := u.splitter.SplitBySeller(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if _, err := u.lots.CreateLots(ctx, o.ID); err != nil {
			return nil, err
		}
	}

	u.logger.Info("order placed",
		slog.String("reference", order.Reference),
		slog.Int64("user", userID),
		slog.Int("orders", len(orders)),
		slog.String("total", total.StringFixed(2)),
	)

	return orders, nil
}

// ConfirmPayment reacts to a payment-confirmed event for the referenced
// order. The first confirmation records the payment intent, forces confirmed
// status and sends the order confirmation email; repeats for the same
// reference are no-ops. The email is fire-and-forget: a failed send is
// logged, never rolled back.
func (u *CheckoutUseCase) ConfirmPayment(ctx context.Context, reference, paymentIntentID string) error {
	order, err := u.orders.GetByReference(ctx, reference)
	if err != nil {
		return err
	}

	if order.PaymentIntentID != nil {
		u.logger.Info("payment already recorded, skipping", slog.String("reference", reference))
		return nil
	}

	if err := u.orders.ConfirmPayment(ctx, order.ID, paymentIntentID); err != nil {
		return fmt.Errorf("confirm payment for order %s: %w", reference, err)
	}
	order.Status = model.OrderStatusConfirmed
	order.PaymentIntentID = &paymentIntentID

	user, err := u.users.GetByID(ctx, order.UserID)
	if err != nil {
		u.logger.Error("load buyer for confirmation email failed",
			slog.String("reference", reference),
			slog.String("error", err.Error()),
		)
		return nil
	}
	if !u.notifier.SendOrderConfirmation(ctx, order, user.Email) {
		u.logger.Error("order confirmation email failed", slog.String("reference", reference))
	}
	return nil
}

// Orders returns the buyer's orders, newest first.
func (u *CheckoutUseCase) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// OrderByReference resolves a single order.
func (u *CheckoutUseCase) OrderByReference(ctx context.Context, reference string) (*model.Order, error) {
	return u.orders.GetByReference(ctx, reference)
}
