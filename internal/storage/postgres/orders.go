package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/domain/repository"
)

const orderColumns = `id, user_id, reference, status, total_amount,
                      delivery_first_name, delivery_last_name, delivery_street, delivery_zip_code,
                      delivery_city, delivery_country, delivery_phone,
                      payment_intent_id, payment_method, shipping_method, created_at, updated_at`

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `INSERT INTO orders (user_id, reference, status, total_amount,
                           delivery_first_name, delivery_last_name, delivery_street, delivery_zip_code,
                           delivery_city, delivery_country, delivery_phone,
                           payment_intent_id, payment_method, shipping_method)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
                       RETURNING id, created_at, updated_at`
		err := tx.QueryRow(ctx, query,
			order.UserID, order.Reference, order.Status, order.TotalAmount,
			order.Delivery.FirstName, order.Delivery.LastName, order.Delivery.Street, order.Delivery.ZipCode,
			order.Delivery.City, order.Delivery.Country, order.Delivery.Phone,
			order.PaymentIntentID, order.PaymentMethod, order.ShippingMethod,
		).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			if err := insertOrderItem(ctx, tx, item); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertOrderItem(ctx context.Context, tx pgx.Tx, item *model.OrderItem) error {
	const query = `INSERT INTO order_items (order_id, product_id, seller_id, product_name,
                       unit_price, quantity, total_line, selected_color, selected_size)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id`
	return tx.QueryRow(ctx, query,
		item.OrderID, item.ProductID, item.SellerID, item.ProductName,
		item.UnitPrice, item.Quantity, item.TotalLine, item.SelectedColor, item.SelectedSize,
	).Scan(&item.ID)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := r.scanOrder(r.storage.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, err
	}
	return r.loadOrderChildren(ctx, order)
}

func (r *orderRepository) GetByReference(ctx context.Context, reference string) (*model.Order, error) {
	order, err := r.scanOrder(r.storage.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE reference=$1`, reference))
	if err != nil {
		return nil, err
	}
	return r.loadOrderChildren(ctx, order)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) ReferenceExists(ctx context.Context, reference string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM orders WHERE reference=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, reference).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *orderRepository) ReplaceWithSplit(ctx context.Context, originalID int64, replacements []repository.SplitOrder) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertQuery = `INSERT INTO orders (user_id, reference, status, total_amount,
                                 delivery_first_name, delivery_last_name, delivery_street, delivery_zip_code,
                                 delivery_city, delivery_country, delivery_phone,
                                 payment_intent_id, payment_method, shipping_method, created_at)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
                             RETURNING id, updated_at`
		for _, replacement := range replacements {
			order := replacement.Order
			err := tx.QueryRow(ctx, insertQuery,
				order.UserID, order.Reference, order.Status, order.TotalAmount,
				order.Delivery.FirstName, order.Delivery.LastName, order.Delivery.Street, order.Delivery.ZipCode,
				order.Delivery.City, order.Delivery.Country, order.Delivery.Phone,
				order.PaymentIntentID, order.PaymentMethod, order.ShippingMethod, order.CreatedAt,
			).Scan(&order.ID, &order.UpdatedAt)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					return domainErrors.ErrAlreadyExists
				}
				return err
			}

			tag, err := tx.Exec(ctx,
				`UPDATE order_items SET order_id=$1 WHERE id = ANY($2)`,
				order.ID, replacement.ItemIDs)
			if err != nil {
				return err
			}
			if got, want := tag.RowsAffected(), int64(len(replacement.ItemIDs)); got != want {
				return fmt.Errorf("reassign items of order %d: moved %d of %d", originalID, got, want)
			}
		}

		tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id=$1`, originalID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) ConfirmPayment(ctx context.Context, orderID int64, paymentIntentID string) error {
	const query = `UPDATE orders SET status=$2, payment_intent_id=$3, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, orderID, model.OrderStatusConfirmed, paymentIntentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) scanOrder(row pgx.Row) (*model.Order, error) {
	order, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func scanOrderRow(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Reference, &o.Status, &o.TotalAmount,
		&o.Delivery.FirstName, &o.Delivery.LastName, &o.Delivery.Street, &o.Delivery.ZipCode,
		&o.Delivery.City, &o.Delivery.Country, &o.Delivery.Phone,
		&o.PaymentIntentID, &o.PaymentMethod, &o.ShippingMethod, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) loadOrderChildren(ctx context.Context, order *model.Order) (*model.Order, error) {
	const itemsQuery = `SELECT id, order_id, product_id, seller_id, product_name,
                               unit_price, quantity, total_line, selected_color, selected_size
                        FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, itemsQuery, order.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var item model.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.SellerID, &item.ProductName,
			&item.UnitPrice, &item.Quantity, &item.TotalLine, &item.SelectedColor, &item.SelectedSize); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lots, err := (&lotRepository{storage: r.storage}).ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Lots = lots
	return order, nil
}
