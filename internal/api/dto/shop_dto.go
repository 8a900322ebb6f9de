package dto

import (
	"time"

	"github.com/spec-kit/storefront/internal/domain"
)

// AddressRequest payload for creating an address.
type AddressRequest struct {
	Unit          string `json:"unit"`
	Street        string `json:"street"`
	City          string `json:"city"`
	PostalCode    int64  `json:"postal_code"`
	StateProvince string `json:"state_province"`
	Country       string `json:"country"`
}

// AddressResponse is an address as returned to its owner.
type AddressResponse struct {
	ID            int64  `json:"address_id"`
	Unit          string `json:"unit"`
	Street        string `json:"street"`
	City          string `json:"city"`
	PostalCode    int64  `json:"postal_code"`
	StateProvince string `json:"state_province"`
	Country       string `json:"country"`
}

// PersonalInfoPayload is used for both reading and writing personal info.
type PersonalInfoPayload struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Gender    domain.Gender `json:"gender"`
}

// CartItemRequest payload for adding to the cart.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// CartLineResponse is a cart line joined with its product.
type CartLineResponse struct {
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
}

// OrderResponse describes a placed order.
type OrderResponse struct {
	ID        int64              `json:"order_id"`
	CreatedAt time.Time          `json:"creation_time"`
	TotalCost *float64           `json:"total_cost"`
	Status    domain.OrderStatus `json:"order_status"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	OrderID   int64 `json:"order_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// AddressFromRequest maps the payload into the domain model.
func AddressFromRequest(req AddressRequest) domain.Address {
	return domain.Address{
		Unit:          req.Unit,
		Street:        req.Street,
		City:          req.City,
		PostalCode:    req.PostalCode,
		StateProvince: req.StateProvince,
		Country:       req.Country,
	}
}

// NewAddressResponse maps a domain address for output.
func NewAddressResponse(a domain.Address) AddressResponse {
	return AddressResponse{
		ID:            a.ID,
		Unit:          a.Unit,
		Street:        a.Street,
		City:          a.City,
		PostalCode:    a.PostalCode,
		StateProvince: a.StateProvince,
		Country:       a.Country,
	}
}

// NewOrderResponse maps a domain order for output.
func NewOrderResponse(o domain.Order) OrderResponse {
	return OrderResponse{ID: o.ID, CreatedAt: o.CreatedAt, TotalCost: o.TotalCost, Status: o.Status}
}
