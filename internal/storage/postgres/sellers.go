package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
)

const sellerColumns = `id, user_id, shop_name, slug, description, country, city, iban, status,
                       rating_average, rating_count, created_at, updated_at`

func (r *sellerRepository) Create(ctx context.Context, seller *model.Seller) error {
	const query = `INSERT INTO sellers (user_id, shop_name, slug, description, country, city, iban, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		seller.UserID, seller.ShopName, seller.Slug, seller.Description,
		seller.Country, seller.City, seller.IBAN, seller.Status,
	).Scan(&seller.ID, &seller.CreatedAt, &seller.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *sellerRepository) GetByID(ctx context.Context, id int64) (*model.Seller, error) {
	return r.scanSeller(r.storage.pool.QueryRow(ctx,
		`SELECT `+sellerColumns+` FROM sellers WHERE id=$1`, id))
}

func (r *sellerRepository) GetByUserID(ctx context.Context, userID int64) (*model.Seller, error) {
	return r.scanSeller(r.storage.pool.QueryRow(ctx,
		`SELECT `+sellerColumns+` FROM sellers WHERE user_id=$1`, userID))
}

func (r *sellerRepository) UpdateStatus(ctx context.Context, sellerID int64, status model.SellerStatus) error {
	const query = `UPDATE sellers SET status=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, sellerID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *sellerRepository) UpdateRating(ctx context.Context, sellerID int64, average *decimal.Decimal, count int) error {
	const query = `UPDATE sellers SET rating_average=$2, rating_count=$3, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, sellerID, decimalArg(average), count)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *sellerRepository) scanSeller(row pgx.Row) (*model.Seller, error) {
	var (
		s      model.Seller
		rating decimal.NullDecimal
	)
	err := row.Scan(&s.ID, &s.UserID, &s.ShopName, &s.Slug, &s.Description,
		&s.Country, &s.City, &s.IBAN, &s.Status,
		&rating, &s.RatingCount, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	s.RatingAverage = nullDecimalPtr(rating)
	return &s, nil
}

// decimalArg converts an optional decimal into a SQL-NULL-aware argument.
func decimalArg(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
