package service

import (
	"context"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/events"
	"github.com/spec-kit/storefront/internal/repository"
	apperrors "github.com/spec-kit/storefront/pkg/util"
)

// ShoppingService handles the cart and order flows of the authenticated user.
type ShoppingService struct {
	carts  repository.CartRepository
	orders repository.OrderRepository
	events events.Dispatcher
}

// NewShoppingService builds the service.
func NewShoppingService(carts repository.CartRepository, orders repository.OrderRepository, dispatcher events.Dispatcher) *ShoppingService {
	return &ShoppingService{carts: carts, orders: orders, events: dispatcher}
}

// AddToCart adds quantity of a product to the identity's cart and reports
// whether a new cart line was created.
func (s *ShoppingService) AddToCart(ctx context.Context, identity string, productID, quantity int64) (bool, error) {
	if productID <= 0 || quantity <= 0 {
		return false, apperrors.NewValidationError("product_id and a positive quantity required", nil)
	}
	return s.carts.Add(ctx, domain.CartItem{UserID: identity, ProductID: productID, Quantity: quantity})
}

// Cart returns the identity's cart lines.
func (s *ShoppingService) Cart(ctx context.Context, identity string) ([]domain.CartLine, error) {
	return s.carts.ListLines(ctx, identity)
}

// PlaceOrder turns the identity's cart into an order.
func (s *ShoppingService) PlaceOrder(ctx context.Context, identity string) (*domain.Order, error) {
	order, err := s.orders.CreateFromCart(ctx, identity)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		_ = s.events.Publish(ctx, events.Event{
			Type:    events.EventOrderPlaced,
			UserID:  identity,
			Payload: events.OrderPlacedPayload{OrderID: order.ID, TotalCost: order.TotalCost},
		})
	}
	return order, nil
}

// Orders lists the identity's orders.
func (s *ShoppingService) Orders(ctx context.Context, identity string) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, identity)
}

// OrderItems lists the items of one of the identity's orders.
func (s *ShoppingService) OrderItems(ctx context.Context, identity string, orderID int64) ([]domain.OrderItem, error) {
	return s.orders.ListItems(ctx, identity, orderID)
}
