package repository

import (
	"context"

	"github.com/innovshop/marketplace/internal/domain/model"
)

// SellerLotRepository describes persistence operations with seller lots.
type SellerLotRepository interface {
	GetByID(ctx context.Context, id int64) (*model.SellerLot, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.SellerLot, error)
	// CreateBatch inserts all lots in one transaction, filling generated ids.
	CreateBatch(ctx context.Context, lots []model.SellerLot) ([]model.SellerLot, error)
	UpdateStatus(ctx context.Context, lotID int64, status model.LotStatus) error
}
