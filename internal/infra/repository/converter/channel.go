package converter

import (
	"closeout-market/internal/domain/channel"
	"closeout-market/internal/domain/message"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"
)

func ChannelToInsertParams(ch *channel.Channel) sqlc.InsertChannelParams {
	return sqlc.InsertChannelParams{
		ID:        ch.ID(),
		ListingID: ch.ListingID(),
		BuyerID:   ch.BuyerID(),
		SellerID:  ch.SellerID(),
		CreatedAt: pgconv.TimeToPgtype(ch.CreatedAt()),
	}
}

func ChannelFromRow(r sqlc.Channels) *channel.Channel {
	return channel.ReconstructChannel(r.ID, r.ListingID, r.BuyerID, r.SellerID, r.LastSeq, pgconv.TimeFromPgtype(r.CreatedAt))
}

func MessageToInsertParams(m *message.Message) sqlc.InsertMessageParams {
	return sqlc.InsertMessageParams{
		ID:        m.ID(),
		ChannelID: m.ChannelID(),
		Seq:       m.Seq(),
		SenderID:  m.SenderID(),
		Body:      m.Body().String(),
		CreatedAt: pgconv.TimeToPgtype(m.CreatedAt()),
	}
}

func MessageFromRow(r sqlc.Messages) *message.Message {
	return message.ReconstructMessage(r.ID, r.ChannelID, r.Seq, r.SenderID, r.Body, pgconv.TimeFromPgtype(r.CreatedAt))
}
