package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/events"
	apperrors "github.com/spec-kit/storefront/pkg/util"
)

func TestShoppingService_AddToCartValidation(t *testing.T) {
	carts := &fakeCartRepo{}
	svc := NewShoppingService(carts, &fakeOrderRepo{}, nil)
	ctx := context.Background()

	if _, err := svc.AddToCart(ctx, "u1", 0, 1); apperrors.ToDomainError(err).HTTPStatus != 400 {
		t.Errorf("AddToCart() with zero product error = %v, want validation", err)
	}
	if _, err := svc.AddToCart(ctx, "u1", 5, -1); err == nil {
		t.Error("AddToCart() accepted a negative quantity")
	}

	created, err := svc.AddToCart(ctx, "u1", 5, 2)
	if err != nil || !created {
		t.Fatalf("AddToCart() = %v, %v", created, err)
	}
	if got := carts.added[0]; got.UserID != "u1" || got.ProductID != 5 || got.Quantity != 2 {
		t.Errorf("stored cart item = %+v", got)
	}
}

func TestShoppingService_PlaceOrder(t *testing.T) {
	total := 12.5
	dispatcher := events.NewInMemoryDispatcher()
	var placed []events.Event
	dispatcher.Subscribe(events.EventOrderPlaced, func(_ context.Context, e events.Event) error {
		placed = append(placed, e)
		return nil
	})

	svc := NewShoppingService(&fakeCartRepo{}, &fakeOrderRepo{order: &domain.Order{ID: 7, TotalCost: &total}}, dispatcher)
	order, err := svc.PlaceOrder(context.Background(), "u1")
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	if order.UserID != "u1" || order.ID != 7 {
		t.Errorf("order = %+v", order)
	}
	if len(placed) != 1 || placed[0].UserID != "u1" {
		t.Fatalf("order_placed events = %+v", placed)
	}
	if p := placed[0].Payload.(events.OrderPlacedPayload); p.OrderID != 7 {
		t.Errorf("payload order id = %d, want 7", p.OrderID)
	}
}

func TestShoppingService_PlaceOrderEmptyCart(t *testing.T) {
	svc := NewShoppingService(&fakeCartRepo{}, &fakeOrderRepo{err: domain.ErrEmptyCart}, nil)
	if _, err := svc.PlaceOrder(context.Background(), "u1"); !errors.Is(err, domain.ErrEmptyCart) {
		t.Errorf("PlaceOrder() error = %v, want ErrEmptyCart", err)
	}
}
