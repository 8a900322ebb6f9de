package service

import (
	"context"
	"testing"

	"github.com/spec-kit/storefront/internal/domain"
	apperrors "github.com/spec-kit/storefront/pkg/util"
)

type fakeAddressRepo struct {
	stored []domain.Address
}

func (r *fakeAddressRepo) Create(_ context.Context, a *domain.Address) error {
	a.ID = int64(len(r.stored) + 1)
	r.stored = append(r.stored, *a)
	return nil
}

func (r *fakeAddressRepo) ListByUser(_ context.Context, userID string) ([]domain.Address, error) {
	var out []domain.Address
	for _, a := range r.stored {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	saved map[string]domain.PersonalInfo
}

func (r *fakeProfileRepo) Get(_ context.Context, userID string) (*domain.PersonalInfo, error) {
	info := r.saved[userID]
	return &info, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, info *domain.PersonalInfo) (bool, error) {
	_, existed := r.saved[info.UserID]
	r.saved[info.UserID] = *info
	return !existed, nil
}

func TestAccountService_AddressesScopedToIdentity(t *testing.T) {
	addresses := &fakeAddressRepo{}
	svc := NewAccountService(addresses, &fakeProfileRepo{saved: map[string]domain.PersonalInfo{}})
	ctx := context.Background()

	in := domain.Address{UserID: "someone-else", Street: "1 Main", City: "Town", Country: "NZ"}
	created, err := svc.CreateAddress(ctx, "u1", in)
	if err != nil {
		t.Fatalf("CreateAddress() error = %v", err)
	}
	if created.UserID != "u1" {
		t.Errorf("address owner = %q, want u1", created.UserID)
	}

	if list, _ := svc.ListAddresses(ctx, "someone-else"); len(list) != 0 {
		t.Errorf("other identity sees %d addresses", len(list))
	}

	if _, err := svc.CreateAddress(ctx, "u1", domain.Address{City: "Town"}); apperrors.ToDomainError(err).HTTPStatus != 400 {
		t.Errorf("CreateAddress() incomplete error = %v, want validation", err)
	}
}

func TestAccountService_SavePersonalInfo(t *testing.T) {
	profiles := &fakeProfileRepo{saved: map[string]domain.PersonalInfo{}}
	svc := NewAccountService(&fakeAddressRepo{}, profiles)
	ctx := context.Background()

	info := domain.PersonalInfo{FirstName: "Ada", LastName: "L", Gender: domain.GenderFemale}
	created, err := svc.SavePersonalInfo(ctx, "u1", info)
	if err != nil || !created {
		t.Fatalf("first SavePersonalInfo() = %v, %v", created, err)
	}
	created, err = svc.SavePersonalInfo(ctx, "u1", info)
	if err != nil || created {
		t.Fatalf("second SavePersonalInfo() = %v, %v; want update", created, err)
	}

	info.Gender = "Robot"
	if _, err := svc.SavePersonalInfo(ctx, "u1", info); err == nil {
		t.Error("SavePersonalInfo() accepted unknown gender")
	}
}
