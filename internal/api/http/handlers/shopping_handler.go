package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/api/dto"
	"github.com/spec-kit/storefront/internal/service"
	apperrors "github.com/spec-kit/storefront/pkg/util"
)

// ShoppingHandler exposes cart and order endpoints.
type ShoppingHandler struct {
	shopping *service.ShoppingService
}

// NewShoppingHandler constructs handler.
func NewShoppingHandler(shopping *service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{shopping: shopping}
}

// AddToCart handles POST /add_to_cart.
func (h *ShoppingHandler) AddToCart(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req dto.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.shopping.AddToCart(c.UserContext(), identity, req.ProductID, req.Quantity)
	if err != nil {
		return apperrors.MapError(err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": req})
}

// Cart handles GET /get_cart.
func (h *ShoppingHandler) Cart(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	lines, err := h.shopping.Cart(c.UserContext(), identity)
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		resp = append(resp, dto.CartLineResponse{ProductName: l.ProductName, Price: l.Price, Quantity: l.Quantity})
	}
	return c.JSON(fiber.Map{"data": resp})
}

// CreateOrder handles POST /create_order.
func (h *ShoppingHandler) CreateOrder(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.shopping.PlaceOrder(c.UserContext(), identity)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewOrderResponse(*order)})
}

// Orders handles GET /get_orders.
func (h *ShoppingHandler) Orders(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.shopping.Orders(c.UserContext(), identity)
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.NewOrderResponse(o))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// OrderItems handles GET /orders/:order_id.
func (h *ShoppingHandler) OrderItems(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	orderID, err := c.ParamsInt("order_id")
	if err != nil || orderID <= 0 {
		return fiber.NewError(http.StatusBadRequest, "invalid order id")
	}

	items, err := h.shopping.OrderItems(c.UserContext(), identity, int64(orderID))
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.OrderItemResponse{OrderID: it.OrderID, ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return c.JSON(fiber.Map{"data": resp})
}
