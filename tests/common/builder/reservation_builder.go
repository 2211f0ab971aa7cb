//go:build unit || e2e

package builder

import (
	"time"

	"closeout-market/internal/domain/reservation"
	"closeout-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	BuyerID    uuid.UUID
	AttemptKey uuid.UUID
	Outcome    reservation.Outcome
	Reason     reservation.RejectReason
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:         uuid.New(),
		ListingID:  uuid.New(),
		BuyerID:    uuid.New(),
		AttemptKey: uuid.New(),
		Outcome:    reservation.OutcomeSucceeded,
		CreatedAt:  time.Date(2025, 6, 1, 18, 5, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	key := b.AttemptKey
	return reservation.ReconstructReservation(b.ID, b.ListingID, b.BuyerID, b.Outcome, b.Reason, &key, b.CreatedAt)
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:               b.ID,
		ListingID:        b.ListingID,
		BuyerID:          b.BuyerID,
		Outcome:          b.Outcome.String(),
		RejectReason:     b.Reason.String(),
		ListingName:      "Croissant box",
		DiscountPrice:    6000,
		ListingExpiresAt: b.CreatedAt.Add(2 * time.Hour),
		StoreName:        "Morning Bakery",
		CreatedAt:        b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:               b.ID,
		ListingID:        b.ListingID,
		ListingName:      "Croissant box",
		StoreName:        "Morning Bakery",
		DiscountPrice:    6000,
		ListingExpiresAt: b.CreatedAt.Add(2 * time.Hour),
		CreatedAt:        b.CreatedAt,
	}
}
