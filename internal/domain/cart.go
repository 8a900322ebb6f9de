package domain

// CartItem is a product quantity held in a user's cart.
type CartItem struct {
	UserID    string
	ProductID int64
	Quantity  int64
}

// CartLine is a cart item joined with its product for display.
type CartLine struct {
	ProductName string
	Price       float64
	Quantity    int64
}
