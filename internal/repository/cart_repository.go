package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront/internal/domain"
)

// CartRepository manages per-user cart rows.
type CartRepository interface {
	// Add inserts the item or increases the existing quantity. It returns
	// true when a new row was created.
	Add(ctx context.Context, item domain.CartItem) (bool, error)
	ListLines(ctx context.Context, userID string) ([]domain.CartLine, error)
}

type cartRepository struct {
	pool *pgxpool.Pool
}

// NewCartRepository returns a Postgres-backed implementation.
func NewCartRepository(pool *pgxpool.Pool) CartRepository {
	return &cartRepository{pool: pool}
}

func (r *cartRepository) Add(ctx context.Context, item domain.CartItem) (bool, error) {
	const query = `
        INSERT INTO cart_items (user_id, product_id, quantity)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, product_id) DO UPDATE
        SET quantity = cart_items.quantity + EXCLUDED.quantity
        RETURNING (xmax = 0)`

	var created bool
	err := r.pool.QueryRow(ctx, query, item.UserID, item.ProductID, item.Quantity).Scan(&created)
	return created, err
}

func (r *cartRepository) ListLines(ctx context.Context, userID string) ([]domain.CartLine, error) {
	const query = `
        SELECT products.product_name, products.price, cart_items.quantity
        FROM products
        INNER JOIN cart_items ON cart_items.product_id = products.product_id
        WHERE cart_items.user_id = $1
        ORDER BY products.product_id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.CartLine, 0)
	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductName, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
