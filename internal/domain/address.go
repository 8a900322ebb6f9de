package domain

// Address is a shipping address owned by a user.
type Address struct {
	ID            int64
	UserID        string
	Unit          string
	Street        string
	City          string
	PostalCode    int64
	StateProvince string
	Country       string
}
