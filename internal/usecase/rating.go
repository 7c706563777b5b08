package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/domain/repository"
)

// RatingUseCase keeps product and seller rating aggregates consistent with
// the live review set. Recomputation is a full re-scan of the affected
// reviews; fine at current volumes, revisit if review counts explode.
type RatingUseCase struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	sellers  repository.SellerRepository
	logger   *slog.Logger
}

// NewRatingUseCase constructs RatingUseCase.
func NewRatingUseCase(reviews repository.ReviewRepository, products repository.ProductRepository, sellers repository.SellerRepository, logger *slog.Logger) *RatingUseCase {
	return &RatingUseCase{reviews: reviews, products: products, sellers: sellers, logger: logger}
}

// AddReview creates a review for the acting user and recomputes the affected
// aggregates. A user may review a product at most once.
func (u *RatingUseCase) AddReview(ctx context.Context, userID int64, review *model.ProductReview) (*model.ProductReview, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domainErrors.ErrInvalidStatus)
	}

	existing, err := u.reviews.GetByUserAndProduct(ctx, userID, review.ProductID)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: you have already reviewed this product", domainErrors.ErrAlreadyExists)
	}

	review.UserID = userID
	if err := u.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := u.Recompute(ctx, review.ProductID); err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReview changes rating/comment of an existing review. Only the author
// or an admin may update it.
func (u *RatingUseCase) UpdateReview(ctx context.Context, actor Actor, review *model.ProductReview) (*model.ProductReview, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domainErrors.ErrInvalidStatus)
	}

	current, err := u.reviews.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	if current.UserID != actor.UserID && !actor.Admin {
		return nil, domainErrors.PermissionDenied("you can only modify your own reviews")
	}

	current.Rating = review.Rating
	current.Comment = review.Comment
	if err := u.reviews.Update(ctx, current); err != nil {
		return nil, err
	}

	if err := u.Recompute(ctx, current.ProductID); err != nil {
		return nil, err
	}
	return current, nil
}

// DeleteReview removes a review and recomputes the affected aggregates. Only
// the author or an admin may delete it.
func (u *RatingUseCase) DeleteReview(ctx context.Context, actor Actor, reviewID int64) error {
	review, err := u.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != actor.UserID && !actor.Admin {
		return domainErrors.PermissionDenied("you can only delete your own reviews")
	}

	if err := u.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	return u.Recompute(ctx, review.ProductID)
}

// Recompute re-scans the product's reviews, writes the new average/count, and
// does the same for the product's seller across all of their products. With
// zero reviews the average is unset and the count is zero.
func (u *RatingUseCase) Recompute(ctx context.Context, productID int64) error {
	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("load product %d: %w", productID, err)
	}

	reviews, err := u.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}

	average, count := aggregateRatings(reviews)
	if err := u.products.UpdateRating(ctx, productID, average, count); err != nil {
		return fmt.Errorf("update product %d rating: %w", productID, err)
	}

	if product.SellerID == nil {
		return nil
	}

	sellerReviews, err := u.reviews.ListBySeller(ctx, *product.SellerID)
	if err != nil {
		return err
	}
	sellerAverage, sellerCount := aggregateRatings(sellerReviews)
	if err := u.sellers.UpdateRating(ctx, *product.SellerID, sellerAverage, sellerCount); err != nil {
		return fmt.Errorf("update seller %d rating: %w", *product.SellerID, err)
	}

	u.logger.Info("ratings recomputed",
		slog.Int64("product", productID),
		slog.Int("product_reviews", count),
		slog.Int64("seller", *product.SellerID),
		slog.Int("seller_reviews", sellerCount),
	)

	return nil
}

// aggregateRatings returns the 2-decimal mean and count of the reviews, a nil
// average when there are none.
func aggregateRatings(reviews []model.ProductReview) (*decimal.Decimal, int) {
	if len(reviews) == 0 {
		return nil, 0
	}
	sum := int64(0)
	for _, r := range reviews {
		sum += int64(r.Rating)
	}
	average := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(reviews)))).
		Round(2)
	return &average, len(reviews)
}
