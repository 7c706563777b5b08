package test

import (
	"context"

	"github.com/innovshop/marketplace/internal/domain/model"
)

// NotifierStub records notification sends.
type NotifierStub struct {
	OrderConfirmations []string
	SellerApprovals    []int64
	Fail               bool
}

// SendOrderConfirmation records the recipient and reports success unless Fail
// is set.
func (n *NotifierStub) SendOrderConfirmation(ctx context.Context, order *model.Order, email string) bool {
	n.OrderConfirmations = append(n.OrderConfirmations, email)
	return !n.Fail
}

// SendSellerApprovalNotification records the seller and reports success
// unless Fail is set.
func (n *NotifierStub) SendSellerApprovalNotification(ctx context.Context, seller *model.Seller, email string) bool {
	n.SellerApprovals = append(n.SellerApprovals, seller.ID)
	return !n.Fail
}
