package domain

import "time"

// OrderStatus tracks fulfillment progress.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
)

// Order is a placed order owned by a user.
type Order struct {
	ID        int64
	UserID    string
	CreatedAt time.Time
	TotalCost *float64
	Status    OrderStatus
}

// OrderItem is a single product line of an order.
type OrderItem struct {
	OrderID   int64
	ProductID int64
	Quantity  int64
}
