package shared

import (
	"context"
	"time"

	"closeout-market/internal/domain/channel"
	"closeout-market/internal/domain/listing"
	"closeout-market/internal/domain/message"
	"closeout-market/internal/domain/reservation"
	"closeout-market/internal/domain/store"
	sqlc "closeout-market/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	Reservations() ReservationRepository
	Channels() ChannelRepository
	Messages() MessageRepository
	Stores() StoreRepository
	Idempotency() IdempotencyRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	StoreByID(ctx context.Context, id uuid.UUID) (*store.Store, error)
	StoreByOwner(ctx context.Context, ownerID uuid.UUID) (*store.Store, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ChannelByID(ctx context.Context, id uuid.UUID) (*channel.Channel, error)
	ChannelByListingAndBuyer(ctx context.Context, listingID, buyerID uuid.UUID) (*channel.Channel, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type ListingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (uuid.UUID, error)
	Reserve(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, now time.Time) (ReserveOutcome, error)
}

type ReservationRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type ChannelRepository interface {
	// Insert reports KindDuplicateKey when the (listing, buyer) pair already has a channel.
	Insert(ctx context.Context, tx sqlc.DBTX, ch *channel.Channel) (*channel.Channel, error)
	FindByListingAndBuyer(ctx context.Context, tx sqlc.DBTX, listingID, buyerID uuid.UUID) (*channel.Channel, error)
	AdvanceSeq(ctx context.Context, tx sqlc.DBTX, channelID uuid.UUID) (*channel.Channel, error)
}

type MessageRepository interface {
	Insert(ctx context.Context, tx sqlc.DBTX, msg *message.Message) (*message.Message, error)
}

type StoreRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *store.Store) (uuid.UUID, error)
	MarkVerified(ctx context.Context, tx sqlc.DBTX, storeID uuid.UUID, at time.Time) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt, now time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID, reservationID, channelID uuid.UUID) error
	Release(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type OutboxRepository interface {
	Insert(ctx context.Context, tx sqlc.DBTX, aggregateID uuid.UUID, eventType string, payload []byte) error
	ClaimPending(ctx context.Context, tx sqlc.DBTX, limit int32) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, maxAttempts int32) error
}
