package app

import (
	"context"
	"errors"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/domain/repository"
	"github.com/innovshop/marketplace/internal/usecase"
)

// MarketplaceFacade is the single entry point the transport layer talks to.
type MarketplaceFacade struct {
	auth     *usecase.AuthUseCase
	checkout *usecase.CheckoutUseCase
	status   *usecase.StatusUseCase
	rating   *usecase.RatingUseCase
	sellers  *usecase.SellerUseCase

	users      repository.UserRepository
	sellerRepo repository.SellerRepository
}

func NewMarketplaceFacade(
	auth *usecase.AuthUseCase,
	checkout *usecase.CheckoutUseCase,
	status *usecase.StatusUseCase,
	rating *usecase.RatingUseCase,
	sellers *usecase.SellerUseCase,
	users repository.UserRepository,
	sellerRepo repository.SellerRepository,
) *MarketplaceFacade {
	return &MarketplaceFacade{
		auth:       auth,
		checkout:   checkout,
		status:     status,
		rating:     rating,
		sellers:    sellers,
		users:      users,
		sellerRepo: sellerRepo,
	}
}

func (f *MarketplaceFacade) Register(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password)
	return token, err
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *MarketplaceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

// ActorFor resolves the acting identity of a user: their admin flag and, if
// they own a shop, the seller account.
func (f *MarketplaceFacade) ActorFor(ctx context.Context, userID int64) (usecase.Actor, error) {
	user, err := f.users.GetByID(ctx, userID)
	if err != nil {
		return usecase.Actor{}, err
	}

	actor := usecase.Actor{UserID: user.ID, Admin: user.IsAdmin()}
	seller, err := f.sellerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return actor, nil
		}
		return usecase.Actor{}, err
	}
	actor.Seller = seller
	return actor, nil
}

func (f *MarketplaceFacade) PlaceOrder(ctx context.Context, userID, cartID int64, delivery model.DeliveryAddress, paymentMethod, shippingMethod string) ([]model.Order, error) {
	return f.checkout.PlaceOrder(ctx, userID, cartID, delivery, paymentMethod, shippingMethod)
}

func (f *MarketplaceFacade) ConfirmPayment(ctx context.Context, reference, paymentIntentID string) error {
	return f.checkout.ConfirmPayment(ctx, reference, paymentIntentID)
}

func (f *MarketplaceFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.checkout.Orders(ctx, userID)
}

func (f *MarketplaceFacade) OrderByReference(ctx context.Context, reference string) (*model.Order, error) {
	return f.checkout.OrderByReference(ctx, reference)
}

func (f *MarketplaceFacade) ChangeOrderStatus(ctx context.Context, actor usecase.Actor, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.status.ChangeOrderStatus(ctx, actor, orderID, status)
}

func (f *MarketplaceFacade) ChangeLotStatus(ctx context.Context, actor usecase.Actor, lotID int64, patch usecase.LotPatch) (*model.SellerLot, error) {
	return f.status.ChangeLotStatus(ctx, actor, lotID, patch)
}

func (f *MarketplaceFacade) AddReview(ctx context.Context, userID int64, review *model.ProductReview) (*model.ProductReview, error) {
	return f.rating.AddReview(ctx, userID, review)
}

func (f *MarketplaceFacade) UpdateReview(ctx context.Context, actor usecase.Actor, review *model.ProductReview) (*model.ProductReview, error) {
	return f.rating.UpdateReview(ctx, actor, review)
}

func (f *MarketplaceFacade) DeleteReview(ctx context.Context, actor usecase.Actor, reviewID int64) error {
	return f.rating.DeleteReview(ctx, actor, reviewID)
}

func (f *MarketplaceFacade) ApplyAsSeller(ctx context.Context, userID int64, seller *model.Seller) (*model.Seller, error) {
	return f.sellers.Apply(ctx, userID, seller)
}

func (f *MarketplaceFacade) ChangeSellerStatus(ctx context.Context, sellerID int64, status model.SellerStatus) (*model.Seller, error) {
	return f.sellers.ChangeStatus(ctx, sellerID, status)
}
