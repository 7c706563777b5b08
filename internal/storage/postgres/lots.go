package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
)

const lotColumns = `id, order_id, seller_id, status, created_at, updated_at`

func (r *lotRepository) GetByID(ctx context.Context, id int64) (*model.SellerLot, error) {
	var lot model.SellerLot
	err := r.storage.pool.QueryRow(ctx,
		`SELECT `+lotColumns+` FROM order_seller_lots WHERE id=$1`, id,
	).Scan(&lot.ID, &lot.OrderID, &lot.SellerID, &lot.Status, &lot.CreatedAt, &lot.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &lot, nil
}

func (r *lotRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.SellerLot, error) {
	rows, err := r.storage.pool.Query(ctx,
		`SELECT `+lotColumns+` FROM order_seller_lots WHERE order_id=$1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lots []model.SellerLot
	for rows.Next() {
		var lot model.SellerLot
		if err := rows.Scan(&lot.ID, &lot.OrderID, &lot.SellerID, &lot.Status, &lot.CreatedAt, &lot.UpdatedAt); err != nil {
			return nil, err
		}
		lots = append(lots, lot)
	}
	return lots, rows.Err()
}

func (r *lotRepository) CreateBatch(ctx context.Context, lots []model.SellerLot) ([]model.SellerLot, error) {
	created := make([]model.SellerLot, len(lots))
	copy(created, lots)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO order_seller_lots (order_id, seller_id, status)
                       VALUES ($1, $2, $3)
                       RETURNING id, created_at, updated_at`
		for i := range created {
			lot := &created[i]
			if err := tx.QueryRow(ctx, query, lot.OrderID, lot.SellerID, lot.Status).
				Scan(&lot.ID, &lot.CreatedAt, &lot.UpdatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *lotRepository) UpdateStatus(ctx context.Context, lotID int64, status model.LotStatus) error {
	const query = `UPDATE order_seller_lots SET status=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, lotID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
