package commands

import (
	"time"

	"github.com/google/uuid"
)

// Outbox payloads. Consumers key on the event type string stored alongside.

type reservationSucceededEvent struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	ListingID     uuid.UUID `json:"listing_id"`
	BuyerID       uuid.UUID `json:"buyer_id"`
	SellerID      uuid.UUID `json:"seller_id"`
	ChannelID     uuid.UUID `json:"channel_id"`
	StockLeft     int       `json:"stock_left"`
	ReservedAt    time.Time `json:"reserved_at"`
}

type channelCreatedEvent struct {
	ChannelID uuid.UUID `json:"channel_id"`
	ListingID uuid.UUID `json:"listing_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
}
