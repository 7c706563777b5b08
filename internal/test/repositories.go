package test

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error

	RoleUpdates map[int64][]model.Role
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users:       make(map[string]*model.User),
		ByID:        make(map[int64]*model.User),
		Next:        1,
		RoleUpdates: make(map[int64][]model.Role),
	}
}

// Add registers a prebuilt user under its email and id.
func (s *UserRepositoryStub) Add(user *model.User) {
	s.Users[user.Email] = user
	s.ByID[user.ID] = user
	if user.ID >= s.Next {
		s.Next = user.ID + 1
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := model.NewUser(s.Next, email, nil)
	user.PasswordHash = passwordHash
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateRoles rewrites the stored role list and records the call.
func (s *UserRepositoryStub) UpdateRoles(ctx context.Context, userID int64, roles []model.Role) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.SetRawRoles(roles)
	s.RoleUpdates[userID] = roles
	return nil
}

// OrderRepositoryStub allows tests to customize behaviour per method.
type OrderRepositoryStub struct {
	CreateFn           func(context.Context, *model.Order) error
	GetByIDFn          func(context.Context, int64) (*model.Order, error)
	GetByReferenceFn   func(context.Context, string) (*model.Order, error)
	ListByUserFn       func(context.Context, int64) ([]model.Order, error)
	ReferenceExistsFn  func(context.Context, string) (bool, error)
	ReplaceWithSplitFn func(context.Context, int64, []repository.SplitOrder) error
	UpdateStatusFn     func(context.Context, int64, model.OrderStatus) error
	ConfirmPaymentFn   func(context.Context, int64, string) error

	Created      []*model.Order
	Replacements []repository.SplitOrder
	ReplacedID   int64
	StatusCalls  []OrderStatusCall
}

// OrderStatusCall records one UpdateStatus invocation.
type OrderStatusCall struct {
	OrderID int64
	Status  model.OrderStatus
}

// Create assigns sequential ids and tracks the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	order.ID = int64(len(s.Created) + 1)
	for i := range order.Items {
		order.Items[i].ID = int64(100*int(order.ID) + i + 1)
		order.Items[i].OrderID = order.ID
	}
	s.Created = append(s.Created, order)
	return nil
}

// GetByID returns the configured order or not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Created {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByReference resolves by reference across created orders.
func (s *OrderRepositoryStub) GetByReference(ctx context.Context, reference string) (*model.Order, error) {
	if s.GetByReferenceFn != nil {
		return s.GetByReferenceFn(ctx, reference)
	}
	for _, o := range s.Created {
		if o.Reference == reference {
			return o, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders from the created slice.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var orders []model.Order
	for _, o := range s.Created {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	return orders, nil
}

// ReferenceExists reports whether any created order carries the reference.
func (s *OrderRepositoryStub) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	if s.ReferenceExistsFn != nil {
		return s.ReferenceExistsFn(ctx, reference)
	}
	for _, o := range s.Created {
		if o.Reference == reference {
			return true, nil
		}
	}
	return false, nil
}

// ReplaceWithSplit records the replacement set and assigns ids.
func (s *OrderRepositoryStub) ReplaceWithSplit(ctx context.Context, originalID int64, replacements []repository.SplitOrder) error {
	if s.ReplaceWithSplitFn != nil {
		return s.ReplaceWithSplitFn(ctx, originalID, replacements)
	}
	s.ReplacedID = originalID
	kept := make([]*model.Order, 0, len(s.Created)+len(replacements))
	for _, o := range s.Created {
		if o.ID != originalID {
			kept = append(kept, o)
		}
	}
	for i, r := range replacements {
		r.Order.ID = originalID*10 + int64(i) + 1
		kept = append(kept, r.Order)
	}
	s.Created = kept
	s.Replacements = append(s.Replacements, replacements...)
	return nil
}

// UpdateStatus records the requested change.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status)
	}
	s.StatusCalls = append(s.StatusCalls, OrderStatusCall{OrderID: orderID, Status: status})
	return nil
}

// ConfirmPayment records the payment intent on the matching order.
func (s *OrderRepositoryStub) ConfirmPayment(ctx context.Context, orderID int64, paymentIntentID string) error {
	if s.ConfirmPaymentFn != nil {
		return s.ConfirmPaymentFn(ctx, orderID, paymentIntentID)
	}
	for _, o := range s.Created {
		if o.ID == orderID {
			intent := paymentIntentID
			o.PaymentIntentID = &intent
			o.Status = model.OrderStatusConfirmed
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// LotRepositoryStub allows tests to customize seller lot behaviour.
type LotRepositoryStub struct {
	GetByIDFn     func(context.Context, int64) (*model.SellerLot, error)
	ListByOrderFn func(context.Context, int64) ([]model.SellerLot, error)
	CreateBatchFn func(context.Context, []model.SellerLot) ([]model.SellerLot, error)
	UpdateStatusFn func(context.Context, int64, model.LotStatus) error

	Lots        []model.SellerLot
	StatusCalls []LotStatusCall
}

// LotStatusCall records one UpdateStatus invocation.
type LotStatusCall struct {
	LotID  int64
	Status model.LotStatus
}

// GetByID returns the matching lot from the configured slice.
func (s *LotRepositoryStub) GetByID(ctx context.Context, id int64) (*model.SellerLot, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, lot := range s.Lots {
		if lot.ID == id {
			found := lot
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByOrder filters the configured slice by order.
func (s *LotRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.SellerLot, error) {
	if s.ListByOrderFn != nil {
		return s.ListByOrderFn(ctx, orderID)
	}
	var lots []model.SellerLot
	for _, lot := range s.Lots {
		if lot.OrderID == orderID {
			lots = append(lots, lot)
		}
	}
	return lots, nil
}

// CreateBatch assigns sequential ids and stores the lots.
func (s *LotRepositoryStub) CreateBatch(ctx context.Context, lots []model.SellerLot) ([]model.SellerLot, error) {
	if s.CreateBatchFn != nil {
		return s.CreateBatchFn(ctx, lots)
	}
	created := make([]model.SellerLot, 0, len(lots))
	for _, lot := range lots {
		lot.ID = int64(len(s.Lots) + 1)
		s.Lots = append(s.Lots, lot)
		created = append(created, lot)
	}
	return created, nil
}

// UpdateStatus records the requested change and applies it to stored lots.
func (s *LotRepositoryStub) UpdateStatus(ctx context.Context, lotID int64, status model.LotStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, lotID, status)
	}
	s.StatusCalls = append(s.StatusCalls, LotStatusCall{LotID: lotID, Status: status})
	for i := range s.Lots {
		if s.Lots[i].ID == lotID {
			s.Lots[i].Status = status
		}
	}
	return nil
}

// ProductRepositoryStub keeps products in-memory and records rating writes.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Err      error

	RatingCalls    []ProductRatingCall
	PublishedCalls []PublishCall
}

// ProductRatingCall records one UpdateRating invocation.
type ProductRatingCall struct {
	ProductID int64
	Average   *decimal.Decimal
	Count     int
}

// PublishCall records one SetPublishedBySeller invocation.
type PublishCall struct {
	SellerID  int64
	Published bool
}

// NewProductRepositoryStub constructs stub repository with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product)}
}

// GetByID fetches product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateRating applies the aggregate to the stored product and records it.
func (s *ProductRepositoryStub) UpdateRating(ctx context.Context, productID int64, average *decimal.Decimal, count int) error {
	if s.Err != nil {
		return s.Err
	}
	s.RatingCalls = append(s.RatingCalls, ProductRatingCall{ProductID: productID, Average: average, Count: count})
	if p, ok := s.Products[productID]; ok {
		p.RatingAverage = average
		p.RatingCount = count
	}
	return nil
}

// SetPublishedBySeller records the visibility flip.
func (s *ProductRepositoryStub) SetPublishedBySeller(ctx context.Context, sellerID int64, published bool) error {
	if s.Err != nil {
		return s.Err
	}
	s.PublishedCalls = append(s.PublishedCalls, PublishCall{SellerID: sellerID, Published: published})
	for _, p := range s.Products {
		if p.SellerID != nil && *p.SellerID == sellerID {
			p.IsPublished = published
		}
	}
	return nil
}

// ReviewRepositoryStub keeps reviews in-memory for aggregate tests.
type ReviewRepositoryStub struct {
	Reviews map[int64]*model.ProductReview
	// SellerOf maps product id to seller id for ListBySeller filtering.
	SellerOf map[int64]int64
	Next     int64
	Err      error
}

// NewReviewRepositoryStub constructs stub repository with initialized maps.
func NewReviewRepositoryStub() *ReviewRepositoryStub {
	return &ReviewRepositoryStub{
		Reviews:  make(map[int64]*model.ProductReview),
		SellerOf: make(map[int64]int64),
		Next:     1,
	}
}

// Create stores the review unless the user already reviewed the product.
func (s *ReviewRepositoryStub) Create(ctx context.Context, review *model.ProductReview) error {
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.Reviews {
		if existing.UserID == review.UserID && existing.ProductID == review.ProductID {
			return domainErrors.ErrAlreadyExists
		}
	}
	review.ID = s.Next
	s.Next++
	stored := *review
	s.Reviews[review.ID] = &stored
	return nil
}

// Update rewrites rating and comment of a stored review.
func (s *ReviewRepositoryStub) Update(ctx context.Context, review *model.ProductReview) error {
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.Reviews[review.ID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	stored.Rating = review.Rating
	stored.Comment = review.Comment
	return nil
}

// Delete removes a stored review.
func (s *ReviewRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Reviews[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Reviews, id)
	return nil
}

// GetByID fetches a review or returns not found.
func (s *ReviewRepositoryStub) GetByID(ctx context.Context, id int64) (*model.ProductReview, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if review, ok := s.Reviews[id]; ok {
		found := *review
		return &found, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUserAndProduct enforces the one-review-per-user rule in tests.
func (s *ReviewRepositoryStub) GetByUserAndProduct(ctx context.Context, userID, productID int64) (*model.ProductReview, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, review := range s.Reviews {
		if review.UserID == userID && review.ProductID == productID {
			found := *review
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByProduct returns stored reviews of one product.
func (s *ReviewRepositoryStub) ListByProduct(ctx context.Context, productID int64) ([]model.ProductReview, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var reviews []model.ProductReview
	for id := int64(1); id < s.Next; id++ {
		if review, ok := s.Reviews[id]; ok && review.ProductID == productID {
			reviews = append(reviews, *review)
		}
	}
	return reviews, nil
}

// ListBySeller returns stored reviews across the seller's products.
func (s *ReviewRepositoryStub) ListBySeller(ctx context.Context, sellerID int64) ([]model.ProductReview, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var reviews []model.ProductReview
	for id := int64(1); id < s.Next; id++ {
		if review, ok := s.Reviews[id]; ok && s.SellerOf[review.ProductID] == sellerID {
			reviews = append(reviews, *review)
		}
	}
	return reviews, nil
}

// SellerRepositoryStub keeps sellers in-memory and records rating writes.
type SellerRepositoryStub struct {
	Sellers map[int64]*model.Seller
	ByUser  map[int64]*model.Seller
	Next    int64
	Err     error

	RatingCalls []SellerRatingCall
}

// SellerRatingCall records one UpdateRating invocation.
type SellerRatingCall struct {
	SellerID int64
	Average  *decimal.Decimal
	Count    int
}

// NewSellerRepositoryStub constructs stub repository with initialized maps.
func NewSellerRepositoryStub() *SellerRepositoryStub {
	return &SellerRepositoryStub{
		Sellers: make(map[int64]*model.Seller),
		ByUser:  make(map[int64]*model.Seller),
		Next:    1,
	}
}

// Add registers a prebuilt seller.
func (s *SellerRepositoryStub) Add(seller *model.Seller) {
	s.Sellers[seller.ID] = seller
	s.ByUser[seller.UserID] = seller
	if seller.ID >= s.Next {
		s.Next = seller.ID + 1
	}
}

// Create stores the seller with a generated id.
func (s *SellerRepositoryStub) Create(ctx context.Context, seller *model.Seller) error {
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.ByUser[seller.UserID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	seller.ID = s.Next
	s.Next++
	s.Sellers[seller.ID] = seller
	s.ByUser[seller.UserID] = seller
	return nil
}

// GetByID fetches a seller or returns not found.
func (s *SellerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Seller, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if seller, ok := s.Sellers[id]; ok {
		return seller, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUserID fetches the seller owned by the user or returns not found.
func (s *SellerRepositoryStub) GetByUserID(ctx context.Context, userID int64) (*model.Seller, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if seller, ok := s.ByUser[userID]; ok {
		return seller, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus applies the status to the stored seller.
func (s *SellerRepositoryStub) UpdateStatus(ctx context.Context, sellerID int64, status model.SellerStatus) error {
	if s.Err != nil {
		return s.Err
	}
	seller, ok := s.Sellers[sellerID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	seller.Status = status
	return nil
}

// UpdateRating applies the aggregate to the stored seller and records it.
func (s *SellerRepositoryStub) UpdateRating(ctx context.Context, sellerID int64, average *decimal.Decimal, count int) error {
	if s.Err != nil {
		return s.Err
	}
	s.RatingCalls = append(s.RatingCalls, SellerRatingCall{SellerID: sellerID, Average: average, Count: count})
	if seller, ok := s.Sellers[sellerID]; ok {
		seller.RatingAverage = average
		seller.RatingCount = count
	}
	return nil
}

// CartRepositoryStub returns configured carts.
type CartRepositoryStub struct {
	GetByIDFn func(context.Context, int64) (*model.Cart, error)
	Carts     map[int64]*model.Cart
}

// GetByID resolves a cart from the override or the configured map.
func (s *CartRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Cart, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if cart, ok := s.Carts[id]; ok {
		return cart, nil
	}
	return nil, domainErrors.ErrNotFound
}
