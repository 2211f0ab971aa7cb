//go:build unit || e2e

package builder

import (
	"time"

	"closeout-market/internal/domain/channel"
	"closeout-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ChannelBuilder struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	BuyerID   uuid.UUID
	SellerID  uuid.UUID
	LastSeq   int64
	CreatedAt time.Time
}

func NewChannelBuilder() *ChannelBuilder {
	return &ChannelBuilder{
		ID:        uuid.New(),
		ListingID: uuid.New(),
		BuyerID:   uuid.New(),
		SellerID:  uuid.New(),
		CreatedAt: time.Date(2025, 6, 1, 18, 5, 0, 0, time.UTC),
	}
}

func (b *ChannelBuilder) With(mutate func(*ChannelBuilder)) *ChannelBuilder {
	mutate(b)
	return b
}

func (b *ChannelBuilder) Between(buyerID, sellerID uuid.UUID) *ChannelBuilder {
	b.BuyerID = buyerID
	b.SellerID = sellerID
	return b
}

// Build methods
func (b *ChannelBuilder) BuildDomain() *channel.Channel {
	return channel.ReconstructChannel(b.ID, b.ListingID, b.BuyerID, b.SellerID, b.LastSeq, b.CreatedAt)
}

func (b *ChannelBuilder) BuildView() *queries.ChannelView {
	return &queries.ChannelView{
		ID:        b.ID,
		ListingID: b.ListingID,
		BuyerID:   b.BuyerID,
		SellerID:  b.SellerID,
		LastSeq:   b.LastSeq,
		CreatedAt: b.CreatedAt,
	}
}

// BuildMessages returns views for seq from..to inclusive.
func (b *ChannelBuilder) BuildMessages(from, to int64) []*queries.MessageView {
	out := make([]*queries.MessageView, 0, to-from+1)
	for seq := from; seq <= to; seq++ {
		out = append(out, b.BuildMessage(seq))
	}
	return out
}

func (b *ChannelBuilder) BuildMessage(seq int64) *queries.MessageView {
	return &queries.MessageView{
		ID:        uuid.New(),
		ChannelID: b.ID,
		Seq:       seq,
		SenderID:  b.BuyerID,
		Body:      "hello",
		CreatedAt: b.CreatedAt.Add(time.Duration(seq) * time.Second),
	}
}
