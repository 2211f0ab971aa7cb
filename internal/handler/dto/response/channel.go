package response

import (
	"closeout-market/internal/domain/channel"

	"github.com/google/uuid"
)

type ChannelResponse struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	// "created" or "already_exists"
	Result string `json:"result"`
}

func FromGetOrCreate(r channel.GetOrCreateResult) ChannelResponse {
	result := "already_exists"
	if r.Created() {
		result = "created"
	}
	ch := r.Channel
	return ChannelResponse{
		ID:        ch.ID(),
		ListingID: ch.ListingID(),
		BuyerID:   ch.BuyerID(),
		SellerID:  ch.SellerID(),
		Result:    result,
	}
}
