package service

import (
	"context"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/repository"
	apperrors "github.com/spec-kit/storefront/pkg/util"
)

// AccountService manages the address book and personal info of the
// authenticated user. Every method is scoped to the given identity.
type AccountService struct {
	addresses repository.AddressRepository
	profiles  repository.PersonalInfoRepository
}

// NewAccountService builds the service.
func NewAccountService(addresses repository.AddressRepository, profiles repository.PersonalInfoRepository) *AccountService {
	return &AccountService{addresses: addresses, profiles: profiles}
}

// ListAddresses returns the identity's addresses.
func (s *AccountService) ListAddresses(ctx context.Context, identity string) ([]domain.Address, error) {
	return s.addresses.ListByUser(ctx, identity)
}

// CreateAddress stores a new address owned by identity.
func (s *AccountService) CreateAddress(ctx context.Context, identity string, address domain.Address) (*domain.Address, error) {
	if address.Street == "" || address.City == "" || address.Country == "" {
		return nil, apperrors.NewValidationError("street, city and country required", nil)
	}
	address.UserID = identity
	if err := s.addresses.Create(ctx, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// GetPersonalInfo returns the identity's personal info.
func (s *AccountService) GetPersonalInfo(ctx context.Context, identity string) (*domain.PersonalInfo, error) {
	return s.profiles.Get(ctx, identity)
}

// SavePersonalInfo creates or replaces the identity's personal info and
// reports whether it was created.
func (s *AccountService) SavePersonalInfo(ctx context.Context, identity string, info domain.PersonalInfo) (bool, error) {
	if !info.Gender.Valid() {
		return false, apperrors.NewValidationError("unknown gender", map[string]any{"gender": info.Gender})
	}
	info.UserID = identity
	return s.profiles.Upsert(ctx, &info)
}
