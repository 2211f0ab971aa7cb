//go:build unit || e2e

package builder

import (
	"time"

	"closeout-market/internal/domain/store"
	reqdto "closeout-market/internal/handler/dto/request"
	"closeout-market/internal/usecase/commands"

	"github.com/google/uuid"
)

type StoreBuilder struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	Address    string
	BizNumber  string
	OwnerName  string
	StartDate  string
	VerifiedAt *time.Time
	CreatedAt  time.Time
}

func NewStoreBuilder() *StoreBuilder {
	return &StoreBuilder{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      "Morning Bakery",
		Address:   "12 Sejong-daero, Jung-gu, Seoul",
		BizNumber: "1234567890",
		OwnerName: "Kim Minji",
		StartDate: "20200115",
		CreatedAt: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *StoreBuilder) With(mutate func(*StoreBuilder)) *StoreBuilder {
	mutate(b)
	return b
}

func (b *StoreBuilder) WithOwner(ownerID uuid.UUID) *StoreBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *StoreBuilder) Verified() *StoreBuilder {
	at := b.CreatedAt.Add(time.Hour)
	b.VerifiedAt = &at
	return b
}

// Build methods
func (b *StoreBuilder) BuildDomain() *store.Store {
	return store.ReconstructStore(b.ID, b.OwnerID, b.Name, b.Address, b.BizNumber, b.VerifiedAt, b.CreatedAt)
}

func (b *StoreBuilder) BuildRegisterInput() commands.RegisterStoreInput {
	return commands.RegisterStoreInput{
		Name:      b.Name,
		Address:   b.Address,
		BizNumber: b.BizNumber,
	}
}

func (b *StoreBuilder) BuildVerifyInput() commands.VerifyStoreInput {
	return commands.VerifyStoreInput{
		OwnerName: b.OwnerName,
		StartDate: b.StartDate,
	}
}

func (b *StoreBuilder) BuildRegisterRequestDTO() reqdto.RegisterStoreRequest {
	return reqdto.RegisterStoreRequest{
		Name:      b.Name,
		Address:   b.Address,
		BizNumber: b.BizNumber,
	}
}

func (b *StoreBuilder) BuildVerifyRequestDTO() reqdto.VerifyStoreRequest {
	return reqdto.VerifyStoreRequest{
		OwnerName: b.OwnerName,
		StartDate: b.StartDate,
	}
}
