package handlers

import (
	"context"

	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// ActorFacade resolves the acting identity for authorization decisions.
type ActorFacade interface {
	ActorFor(ctx context.Context, userID int64) (usecase.Actor, error)
}

// OrderFacade encapsulates checkout and order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID, cartID int64, delivery model.DeliveryAddress, paymentMethod, shippingMethod string) ([]model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	OrderByReference(ctx context.Context, reference string) (*model.Order, error)
	ChangeOrderStatus(ctx context.Context, actor usecase.Actor, orderID int64, status model.OrderStatus) (*model.Order, error)
}

// LotFacade exposes seller-lot mutations.
type LotFacade interface {
	ChangeLotStatus(ctx context.Context, actor usecase.Actor, lotID int64, patch usecase.LotPatch) (*model.SellerLot, error)
}

// ReviewFacade exposes product review operations.
type ReviewFacade interface {
	AddReview(ctx context.Context, userID int64, review *model.ProductReview) (*model.ProductReview, error)
	UpdateReview(ctx context.Context, actor usecase.Actor, review *model.ProductReview) (*model.ProductReview, error)
	DeleteReview(ctx context.Context, actor usecase.Actor, reviewID int64) error
}

// SellerFacade exposes seller onboarding and administration.
type SellerFacade interface {
	ApplyAsSeller(ctx context.Context, userID int64, seller *model.Seller) (*model.Seller, error)
	ChangeSellerStatus(ctx context.Context, sellerID int64, status model.SellerStatus) (*model.Seller, error)
}

// PaymentFacade exposes payment confirmation for the provider webhook.
type PaymentFacade interface {
	ConfirmPayment(ctx context.Context, reference, paymentIntentID string) error
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	AuthFacade
	ActorFacade
	OrderFacade
	LotFacade
	ReviewFacade
	SellerFacade
	PaymentFacade
}
