package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront/internal/domain"
)

// PersonalInfoRepository stores optional profile details.
type PersonalInfoRepository interface {
	Get(ctx context.Context, userID string) (*domain.PersonalInfo, error)
	// Upsert returns true when a new row was created.
	Upsert(ctx context.Context, info *domain.PersonalInfo) (bool, error)
}

type personalInfoRepository struct {
	pool *pgxpool.Pool
}

// NewPersonalInfoRepository returns a Postgres-backed implementation.
func NewPersonalInfoRepository(pool *pgxpool.Pool) PersonalInfoRepository {
	return &personalInfoRepository{pool: pool}
}

func (r *personalInfoRepository) Get(ctx context.Context, userID string) (*domain.PersonalInfo, error) {
	const query = `
        SELECT user_id, first_name, last_name, gender
        FROM personal_info WHERE user_id=$1`

	var info domain.PersonalInfo
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&info.UserID,
		&info.FirstName,
		&info.LastName,
		&info.Gender,
	); err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *personalInfoRepository) Upsert(ctx context.Context, info *domain.PersonalInfo) (bool, error) {
	// xmax is zero only for freshly inserted rows.
	const query = `
        INSERT INTO personal_info (user_id, first_name, last_name, gender)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id) DO UPDATE
        SET first_name = EXCLUDED.first_name,
            last_name = EXCLUDED.last_name,
            gender = EXCLUDED.gender
        RETURNING (xmax = 0)`

	var created bool
	err := r.pool.QueryRow(ctx, query,
		info.UserID,
		info.FirstName,
		info.LastName,
		info.Gender,
	).Scan(&created)
	return created, err
}
