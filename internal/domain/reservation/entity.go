package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidReason = errors.New("invalid reject reason")
	ErrMissingBuyer  = errors.New("reservation requires a buyer")
)

// Quantity is fixed: one reservation claims one unit.
const Quantity = 1

// Reservation is an append-only ledger entry. It is never updated after creation.
type Reservation struct {
	id         uuid.UUID
	listingID  uuid.UUID
	buyerID    uuid.UUID
	outcome    Outcome
	reason     RejectReason
	attemptKey *uuid.UUID
	createdAt  time.Time
}

func Succeeded(listingID, buyerID uuid.UUID, attemptKey *uuid.UUID, now time.Time) (*Reservation, error) {
	if buyerID == uuid.Nil {
		return nil, ErrMissingBuyer
	}
	return &Reservation{
		id:         uuid.New(),
		listingID:  listingID,
		buyerID:    buyerID,
		outcome:    OutcomeSucceeded,
		attemptKey: attemptKey,
		createdAt:  now,
	}, nil
}

func Rejected(listingID, buyerID uuid.UUID, attemptKey *uuid.UUID, reason RejectReason, now time.Time) (*Reservation, error) {
	if !reason.IsValid() {
		return nil, ErrInvalidReason
	}
	if buyerID == uuid.Nil {
		return nil, ErrMissingBuyer
	}
	return &Reservation{
		id:         uuid.New(),
		listingID:  listingID,
		buyerID:    buyerID,
		outcome:    OutcomeRejected,
		reason:     reason,
		attemptKey: attemptKey,
		createdAt:  now,
	}, nil
}

func ReconstructReservation(
	id, listingID, buyerID uuid.UUID,
	outcome Outcome,
	reason RejectReason,
	attemptKey *uuid.UUID,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		listingID:  listingID,
		buyerID:    buyerID,
		outcome:    outcome,
		reason:     reason,
		attemptKey: attemptKey,
		createdAt:  createdAt,
	}
}

func (r *Reservation) IsSucceeded() bool {
	return r.outcome == OutcomeSucceeded
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) ListingID() uuid.UUID   { return r.listingID }
func (r *Reservation) BuyerID() uuid.UUID     { return r.buyerID }
func (r *Reservation) Quantity() int          { return Quantity }
func (r *Reservation) Outcome() Outcome       { return r.outcome }
func (r *Reservation) Reason() RejectReason   { return r.reason }
func (r *Reservation) AttemptKey() *uuid.UUID { return r.attemptKey }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
