package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/service"
	apperrors "github.com/spec-kit/storefront/pkg/util"
)

// ProductsHandler serves the public catalog.
type ProductsHandler struct {
	catalog *service.CatalogService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(catalog *service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalog}
}

// List handles GET /get_products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.catalog.ListProducts(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": products})
}
