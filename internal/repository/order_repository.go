package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront/internal/domain"
)

// OrderRepository places and reads orders.
type OrderRepository interface {
	// CreateFromCart moves the user's cart into a new order in one transaction.
	CreateFromCart(ctx context.Context, userID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// ListItems returns pgx.ErrNoRows when the order does not belong to userID.
	ListItems(ctx context.Context, userID string, orderID int64) ([]domain.OrderItem, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) CreateFromCart(ctx context.Context, userID string) (*domain.Order, error) {
	order := &domain.Order{UserID: userID, Status: domain.OrderStatusPending}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		var items int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM cart_items WHERE user_id=$1`, userID).Scan(&items); err != nil {
			return err
		}
		if items == 0 {
			return domain.ErrEmptyCart
		}

		if err := tx.QueryRow(ctx, `
            INSERT INTO orders (user_id, order_status)
            VALUES ($1, $2)
            RETURNING order_id, creation_time`,
			userID, order.Status,
		).Scan(&order.ID, &order.CreatedAt); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `
            INSERT INTO order_items (order_id, product_id, quantity)
            SELECT $1, product_id, quantity FROM cart_items WHERE user_id=$2`,
			order.ID, userID,
		); err != nil {
			return err
		}

		var total float64
		if err := tx.QueryRow(ctx, `
            UPDATE orders SET total_cost = (
                SELECT COALESCE(SUM(order_items.quantity * products.price), 0)
                FROM order_items
                INNER JOIN products ON products.product_id = order_items.product_id
                WHERE order_items.order_id = $1
            )
            WHERE order_id = $1
            RETURNING total_cost`,
			order.ID,
		).Scan(&total); err != nil {
			return err
		}
		order.TotalCost = &total

		_, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const query = `
        SELECT order_id, user_id, creation_time, total_cost, order_status
        FROM orders WHERE user_id=$1 ORDER BY creation_time DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CreatedAt, &o.TotalCost, &o.Status); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) ListItems(ctx context.Context, userID string, orderID int64) ([]domain.OrderItem, error) {
	var owned bool
	if err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE order_id=$1 AND user_id=$2)`,
		orderID, userID,
	).Scan(&owned); err != nil {
		return nil, err
	}
	if !owned {
		return nil, pgx.ErrNoRows
	}

	rows, err := r.pool.Query(ctx,
		`SELECT order_id, product_id, quantity FROM order_items WHERE order_id=$1 ORDER BY product_id`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.OrderID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
