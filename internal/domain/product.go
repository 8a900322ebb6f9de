package domain

// ProductCategory classifies catalog items.
type ProductCategory string

const (
	ProductCategoryMeat      ProductCategory = "Meat"
	ProductCategorySeafood   ProductCategory = "Seafood"
	ProductCategoryVegetable ProductCategory = "Vegetable"
	ProductCategoryFruit     ProductCategory = "Fruit"
)

// Product is a catalog entry.
type Product struct {
	ID          int64           `json:"product_id"`
	Name        string          `json:"product_name"`
	Description *string         `json:"product_description,omitempty"`
	Category    ProductCategory `json:"product_category"`
	Stock       int64           `json:"stock"`
	Price       float64         `json:"price"`
	ImagePath   string          `json:"img_path"`
}
