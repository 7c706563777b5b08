package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/domain/repository"
)

// Notifier sends transactional notifications. Delivery is fire-and-forget:
// callers log a failed send and move on, it never fails the triggering
// operation.
type Notifier interface {
	SendOrderConfirmation(ctx context.Context, order *model.Order, email string) bool
	SendSellerApprovalNotification(ctx context.Context, seller *model.Seller, email string) bool
}

// SellerUseCase drives seller onboarding and the approval workflow.
type SellerUseCase struct {
	sellers  repository.SellerRepository
	users    repository.UserRepository
	products repository.ProductRepository
	notifier Notifier
	logger   *slog.Logger
}

// NewSellerUseCase constructs SellerUseCase.
func NewSellerUseCase(sellers repository.SellerRepository, users repository.UserRepository, products repository.ProductRepository, notifier Notifier, logger *slog.Logger) *SellerUseCase {
	return &SellerUseCase{sellers: sellers, users: users, products: products, notifier: notifier, logger: logger}
}

// Apply registers a pending seller account for the user and grants the seller
// role on the stored role list right away, so the storefront can switch to
// the seller dashboard before approval.
func (u *SellerUseCase) Apply(ctx context.Context, userID int64, seller *model.Seller) (*model.Seller, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	seller.UserID = userID
	seller.Status = model.SellerStatusPending
	if err := u.sellers.Create(ctx, seller); err != nil {
		return nil, err
	}

	if err := u.users.UpdateRoles(ctx, userID, model.GrantSellerRole(user.RawRoles())); err != nil {
		return nil, fmt.Errorf("grant seller role to user %d: %w", userID, err)
	}

	u.logger.Info("seller application received",
		slog.Int64("seller", seller.ID),
		slog.String("shop", seller.ShopName),
	)

	return seller, nil
}

// ChangeStatus moves a seller account across the onboarding lifecycle. The
// old and new status are threaded explicitly through the side-effect helpers.
// Approval grants the seller role and sends the approval notification;
// leaving approved revokes the role; suspension unpublishes the catalog and
// reactivation republishes it.
func (u *SellerUseCase) ChangeStatus(ctx context.Context, sellerID int64, status model.SellerStatus) (*model.Seller, error) {
	if !model.ValidSellerStatus(status) {
		return nil, fmt.Errorf("%w: %q is not a seller status", domainErrors.ErrInvalidStatus, status)
	}

	seller, err := u.sellers.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	oldStatus := seller.Status
	if oldStatus == status {
		return seller, nil
	}

	if err := u.sellers.UpdateStatus(ctx, sellerID, status); err != nil {
		return nil, fmt.Errorf("update seller %d status: %w", sellerID, err)
	}
	seller.Status = status

	if err := u.applyRoleChanges(ctx, seller, oldStatus, status); err != nil {
		return nil, err
	}
	if err := u.applyCatalogChanges(ctx, seller, oldStatus, status); err != nil {
		return nil, err
	}

	if status == model.SellerStatusApproved && oldStatus != model.SellerStatusApproved {
		u.notifyApproval(ctx, seller)
	}

	u.logger.Info("seller status changed",
		slog.Int64("seller", sellerID),
		slog.String("from", string(oldStatus)),
		slog.String("to", string(status)),
	)

	return seller, nil
}

func (u *SellerUseCase) applyRoleChanges(ctx context.Context, seller *model.Seller, oldStatus, newStatus model.SellerStatus) error {
	user, err := u.users.GetByID(ctx, seller.UserID)
	if err != nil {
		return err
	}

	var roles []model.Role
	switch {
	case newStatus == model.SellerStatusApproved && oldStatus != model.SellerStatusApproved:
		roles = model.GrantSellerRole(user.RawRoles())
	case oldStatus == model.SellerStatusApproved &&
		(newStatus == model.SellerStatusSuspended || newStatus == model.SellerStatusRejected):
		roles = model.RevokeSellerRole(user.RawRoles())
	default:
		return nil
	}

	if err := u.users.UpdateRoles(ctx, user.ID, roles); err != nil {
		return fmt.Errorf("update roles for user %d: %w", user.ID, err)
	}
	return nil
}

func (u *SellerUseCase) applyCatalogChanges(ctx context.Context, seller *model.Seller, oldStatus, newStatus model.SellerStatus) error {
	switch {
	case newStatus == model.SellerStatusSuspended && oldStatus == model.SellerStatusApproved:
		return u.products.SetPublishedBySeller(ctx, seller.ID, false)
	case newStatus == model.SellerStatusApproved && oldStatus == model.SellerStatusSuspended:
		return u.products.SetPublishedBySeller(ctx, seller.ID, true)
	}
	return nil
}

func (u *SellerUseCase) notifyApproval(ctx context.Context, seller *model.Seller) {
	user, err := u.users.GetByID(ctx, seller.UserID)
	if err != nil {
		u.logger.Error("load seller owner for approval notification failed",
			slog.Int64("seller", seller.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	if !u.notifier.SendSellerApprovalNotification(ctx, seller, user.Email) {
		u.logger.Error("seller approval notification failed", slog.Int64("seller", seller.ID))
	}
}
