package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront/internal/api/dto"
	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/service"
	apperrors "github.com/spec-kit/storefront/pkg/util"
)

// AccountHandler exposes address and personal info endpoints.
type AccountHandler struct {
	accounts *service.AccountService
}

// NewAccountHandler constructs handler.
func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// ListAddresses handles GET /get_addresses.
func (h *AccountHandler) ListAddresses(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	addresses, err := h.accounts.ListAddresses(c.UserContext(), identity)
	if err != nil {
		return apperrors.MapError(err)
	}

	resp := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		resp = append(resp, dto.NewAddressResponse(a))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// CreateAddress handles POST /create_address.
func (h *AccountHandler) CreateAddress(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	address, err := h.accounts.CreateAddress(c.UserContext(), identity, dto.AddressFromRequest(req))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewAddressResponse(*address)})
}

// GetPersonalInfo handles GET /get_personal_info.
func (h *AccountHandler) GetPersonalInfo(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	info, err := h.accounts.GetPersonalInfo(c.UserContext(), identity)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound("personal info", nil)
	}
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.PersonalInfoPayload{
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Gender:    info.Gender,
	}})
}

// SavePersonalInfo handles POST /add_personal_info.
func (h *AccountHandler) SavePersonalInfo(c *fiber.Ctx) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req dto.PersonalInfoPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	created, err := h.accounts.SavePersonalInfo(c.UserContext(), identity, domain.PersonalInfo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
	})
	if err != nil {
		return apperrors.MapError(err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": req})
}
