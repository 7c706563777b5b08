package test

import (
	"context"

	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/usecase"
)

// MarketplaceFacadeStub provides controllable behaviour for handler tests.
// Every method delegates to its override when present; the defaults succeed
// with minimal data.
type MarketplaceFacadeStub struct {
	RegisterFn           func(context.Context, string, string) (string, error)
	AuthenticateFn       func(context.Context, string, string) (string, error)
	ParseTokenFn         func(string) (int64, error)
	ActorForFn           func(context.Context, int64) (usecase.Actor, error)
	PlaceOrderFn         func(context.Context, int64, int64, model.DeliveryAddress, string, string) ([]model.Order, error)
	OrdersFn             func(context.Context, int64) ([]model.Order, error)
	OrderByReferenceFn   func(context.Context, string) (*model.Order, error)
	ChangeOrderStatusFn  func(context.Context, usecase.Actor, int64, model.OrderStatus) (*model.Order, error)
	ChangeLotStatusFn    func(context.Context, usecase.Actor, int64, usecase.LotPatch) (*model.SellerLot, error)
	AddReviewFn          func(context.Context, int64, *model.ProductReview) (*model.ProductReview, error)
	UpdateReviewFn       func(context.Context, usecase.Actor, *model.ProductReview) (*model.ProductReview, error)
	DeleteReviewFn       func(context.Context, usecase.Actor, int64) error
	ApplyAsSellerFn      func(context.Context, int64, *model.Seller) (*model.Seller, error)
	ChangeSellerStatusFn func(context.Context, int64, model.SellerStatus) (*model.Seller, error)
	ConfirmPaymentFn     func(context.Context, string, string) error
}

func (s *MarketplaceFacadeStub) Register(ctx context.Context, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password)
	}
	return "token", nil
}

func (s *MarketplaceFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

func (s *MarketplaceFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

func (s *MarketplaceFacadeStub) ActorFor(ctx context.Context, userID int64) (usecase.Actor, error) {
	if s.ActorForFn != nil {
		return s.ActorForFn(ctx, userID)
	}
	return usecase.Actor{UserID: userID}, nil
}

func (s *MarketplaceFacadeStub) PlaceOrder(ctx context.Context, userID, cartID int64, delivery model.DeliveryAddress, paymentMethod, shippingMethod string) ([]model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID, cartID, delivery, paymentMethod, shippingMethod)
	}
	return []model.Order{{ID: 1, UserID: userID, Reference: "ORD-1"}}, nil
}

func (s *MarketplaceFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID, Reference: "ORD-1"}}, nil
}

func (s *MarketplaceFacadeStub) OrderByReference(ctx context.Context, reference string) (*model.Order, error) {
	if s.OrderByReferenceFn != nil {
		return s.OrderByReferenceFn(ctx, reference)
	}
	return &model.Order{ID: 1, UserID: 1, Reference: reference}, nil
}

func (s *MarketplaceFacadeStub) ChangeOrderStatus(ctx context.Context, actor usecase.Actor, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.ChangeOrderStatusFn != nil {
		return s.ChangeOrderStatusFn(ctx, actor, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

func (s *MarketplaceFacadeStub) ChangeLotStatus(ctx context.Context, actor usecase.Actor, lotID int64, patch usecase.LotPatch) (*model.SellerLot, error) {
	if s.ChangeLotStatusFn != nil {
		return s.ChangeLotStatusFn(ctx, actor, lotID, patch)
	}
	lot := &model.SellerLot{ID: lotID, Status: model.LotStatusConfirmed}
	if patch.Status != nil {
		lot.Status = *patch.Status
	}
	return lot, nil
}

func (s *MarketplaceFacadeStub) AddReview(ctx context.Context, userID int64, review *model.ProductReview) (*model.ProductReview, error) {
	if s.AddReviewFn != nil {
		return s.AddReviewFn(ctx, userID, review)
	}
	review.ID = 1
	review.UserID = userID
	return review, nil
}

func (s *MarketplaceFacadeStub) UpdateReview(ctx context.Context, actor usecase.Actor, review *model.ProductReview) (*model.ProductReview, error) {
	if s.UpdateReviewFn != nil {
		return s.UpdateReviewFn(ctx, actor, review)
	}
	return review, nil
}

func (s *MarketplaceFacadeStub) DeleteReview(ctx context.Context, actor usecase.Actor, reviewID int64) error {
	if s.DeleteReviewFn != nil {
		return s.DeleteReviewFn(ctx, actor, reviewID)
	}
	return nil
}

func (s *MarketplaceFacadeStub) ApplyAsSeller(ctx context.Context, userID int64, seller *model.Seller) (*model.Seller, error) {
	if s.ApplyAsSellerFn != nil {
		return s.ApplyAsSellerFn(ctx, userID, seller)
	}
	seller.ID = 1
	seller.UserID = userID
	seller.Status = model.SellerStatusPending
	return seller, nil
}

func (s *MarketplaceFacadeStub) ChangeSellerStatus(ctx context.Context, sellerID int64, status model.SellerStatus) (*model.Seller, error) {
	if s.ChangeSellerStatusFn != nil {
		return s.ChangeSellerStatusFn(ctx, sellerID, status)
	}
	return &model.Seller{ID: sellerID, Status: status}, nil
}

func (s *MarketplaceFacadeStub) ConfirmPayment(ctx context.Context, reference, paymentIntentID string) error {
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, reference, paymentIntentID)
	}
	return nil
}
