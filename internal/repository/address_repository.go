package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront/internal/domain"
)

// AddressRepository manages a user's address book.
type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
}

type addressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository returns a Postgres-backed implementation.
func NewAddressRepository(pool *pgxpool.Pool) AddressRepository {
	return &addressRepository{pool: pool}
}

func (r *addressRepository) Create(ctx context.Context, address *domain.Address) error {
	const query = `
        INSERT INTO addresses (user_id, unit, street, city, postal_code, state_province, country)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING address_id`

	return r.pool.QueryRow(ctx, query,
		address.UserID,
		address.Unit,
		address.Street,
		address.City,
		address.PostalCode,
		address.StateProvince,
		address.Country,
	).Scan(&address.ID)
}

func (r *addressRepository) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	const query = `
        SELECT address_id, user_id, unit, street, city, postal_code, state_province, country
        FROM addresses WHERE user_id=$1 ORDER BY address_id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]domain.Address, 0)
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Unit,
			&a.Street,
			&a.City,
			&a.PostalCode,
			&a.StateProvince,
			&a.Country,
		); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}
