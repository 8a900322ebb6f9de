package service

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront/internal/domain"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[user.Email]; ok {
		return domain.ErrEmailAlreadyUsed
	}
	r.byEmail[user.Email] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byEmail {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &u, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	calls    int
	products []domain.Product
	err      error
}

func (r *fakeProductRepo) List(context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.products, r.err
}

type fakeCache struct {
	products []domain.Product
	hit      bool
	getErr   error
	sets     int
}

func (c *fakeCache) Get(context.Context) ([]domain.Product, bool, error) {
	return c.products, c.hit, c.getErr
}

func (c *fakeCache) Set(_ context.Context, products []domain.Product) error {
	c.sets++
	c.products = products
	c.hit = true
	return nil
}

type fakeOrderRepo struct {
	order *domain.Order
	err   error
}

func (r *fakeOrderRepo) CreateFromCart(_ context.Context, userID string) (*domain.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	o := *r.order
	o.UserID = userID
	return &o, nil
}

func (r *fakeOrderRepo) ListByUser(context.Context, string) ([]domain.Order, error) {
	return nil, errors.New("not implemented")
}

func (r *fakeOrderRepo) ListItems(context.Context, string, int64) ([]domain.OrderItem, error) {
	return nil, pgx.ErrNoRows
}

type fakeCartRepo struct {
	added []domain.CartItem
}

func (r *fakeCartRepo) Add(_ context.Context, item domain.CartItem) (bool, error) {
	r.added = append(r.added, item)
	return true, nil
}

func (r *fakeCartRepo) ListLines(context.Context, string) ([]domain.CartLine, error) {
	return nil, nil
}
