package shared

import (
	"time"

	"closeout-market/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReserveOutcome is what the atomic reservation primitive reports.
type ReserveOutcome struct {
	OK        bool
	Reason    reservation.RejectReason
	StockLeft int
	SellerID  uuid.UUID
}

// ListingSnapshot is the slice of a listing that command flows need.
type ListingSnapshot struct {
	ID        uuid.UUID
	StoreID   uuid.UUID
	SellerID  uuid.UUID
	Name      string
	Stock     int
	ExpiresAt time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key                 uuid.UUID
	UserID              uuid.UUID
	Endpoint            string
	Status              string
	RequestHash         string
	ResultReservationID *uuid.UUID
	ResultChannelID     *uuid.UUID
	ExpiresAt           time.Time
}

func (r *IdempotencyRecord) IsCompleted() bool {
	return r.Status == IdempotencyStatusCompleted
}

func (r *IdempotencyRecord) ExpiredAt(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

const (
	EventReservationSucceeded = "reservation.succeeded"
	EventChannelCreated       = "channel.created"
)

type OutboxEvent struct {
	ID          uuid.UUID
	AggregateID uuid.UUID
	EventType   string
	Payload     []byte
	Attempts    int
	CreatedAt   time.Time
}
