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

// --- ProductRepository implementation ---

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, seller_id, name, price, is_published, rating_average, rating_count, created_at, updated_at
                   FROM products WHERE id=$1`
	var (
		p      model.Product
		rating decimal.NullDecimal
	)
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.SellerID, &p.Name, &p.Price, &p.IsPublished,
		&rating, &p.RatingCount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	p.RatingAverage = nullDecimalPtr(rating)
	return &p, nil
}

func (r *productRepository) UpdateRating(ctx context.Context, productID int64, average *decimal.Decimal, count int) error {
	const query = `UPDATE products SET rating_average=$2, rating_count=$3, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, productID, decimalArg(average), count)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) SetPublishedBySeller(ctx context.Context, sellerID int64, published bool) error {
	const query = `UPDATE products SET is_published=$2, updated_at=NOW() WHERE seller_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, sellerID, published)
	return err
}

// --- ReviewRepository implementation ---

const reviewColumns = `id, product_id, user_id, rating, comment, created_at, updated_at`

func (r *reviewRepository) Create(ctx context.Context, review *model.ProductReview) error {
	const query = `INSERT INTO product_reviews (product_id, user_id, rating, comment)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		review.ProductID, review.UserID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, review *model.ProductReview) error {
	const query = `UPDATE product_reviews SET rating=$2, comment=$3, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, review.ID, review.Rating, review.Comment)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM product_reviews WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*model.ProductReview, error) {
	return r.scanReview(r.storage.pool.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM product_reviews WHERE id=$1`, id))
}

func (r *reviewRepository) GetByUserAndProduct(ctx context.Context, userID, productID int64) (*model.ProductReview, error) {
	return r.scanReview(r.storage.pool.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM product_reviews WHERE user_id=$1 AND product_id=$2`, userID, productID))
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]model.ProductReview, error) {
	rows, err := r.storage.pool.Query(ctx,
		`SELECT `+reviewColumns+` FROM product_reviews WHERE product_id=$1 ORDER BY created_at`, productID)
	if err != nil {
		return nil, err
	}
	return r.collectReviews(rows)
}

func (r *reviewRepository) ListBySeller(ctx context.Context, sellerID int64) ([]model.ProductReview, error) {
	const query = `SELECT pr.id, pr.product_id, pr.user_id, pr.rating, pr.comment, pr.created_at, pr.updated_at
                   FROM product_reviews pr
                   JOIN products p ON p.id = pr.product_id
                   WHERE p.seller_id=$1
                   ORDER BY pr.created_at`
	rows, err := r.storage.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, err
	}
	return r.collectReviews(rows)
}

func (r *reviewRepository) scanReview(row pgx.Row) (*model.ProductReview, error) {
	var rv model.ProductReview
	err := row.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepository) collectReviews(rows pgx.Rows) ([]model.ProductReview, error) {
	defer rows.Close()
	var reviews []model.ProductReview
	for rows.Next() {
		var rv model.ProductReview
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

// --- CartRepository implementation ---

func (r *cartRepository) GetByID(ctx context.Context, id int64) (*model.Cart, error) {
	const cartQuery = `SELECT id, user_id, created_at FROM carts WHERE id=$1`
	var cart model.Cart
	err := r.storage.pool.QueryRow(ctx, cartQuery, id).Scan(&cart.ID, &cart.UserID, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `SELECT ci.id, ci.cart_id, ci.product_id, p.name, p.seller_id,
                               ci.unit_price, ci.quantity, ci.selected_color, ci.selected_size
                        FROM cart_items ci
                        JOIN products p ON p.id = ci.product_id
                        WHERE ci.cart_id=$1
                        ORDER BY ci.id`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.ProductName, &item.SellerID,
			&item.UnitPrice, &item.Quantity, &item.SelectedColor, &item.SelectedSize); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}
