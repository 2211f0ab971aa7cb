package response

import (
	"time"

	"closeout-market/internal/usecase/commands"
	"closeout-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID        uuid.UUID       `json:"id"`
	ListingID uuid.UUID       `json:"listing_id"`
	BuyerID   uuid.UUID       `json:"buyer_id"`
	Quantity  int             `json:"quantity"`
	Outcome   string          `json:"outcome"`
	Channel   ChannelResponse `json:"channel"`
	Replayed  bool            `json:"replayed"`
	CreatedAt time.Time       `json:"created_at"`
}

type ReservationListResponse struct {
	Items []*queries.ReservationListItem `json:"items"`
	Next  *queries.Cursor                `json:"next,omitempty"`
}

func FromReserveResult(r *commands.ReserveResult) *ReservationResponse {
	res := r.Reservation
	return &ReservationResponse{
		ID:        res.ID(),
		ListingID: res.ListingID(),
		BuyerID:   res.BuyerID(),
		Quantity:  res.Quantity(),
		Outcome:   res.Outcome().String(),
		Channel:   FromGetOrCreate(r.Channel),
		Replayed:  r.Replayed,
		CreatedAt: res.CreatedAt(),
	}
}
