package repository

import (
	"context"

	"closeout-market/internal/domain/channel"
	"closeout-market/internal/infra"
	"closeout-market/internal/infra/repository/converter"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ChannelWriteQueries interface {
	InsertChannel(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertChannelParams) (sqlc.Channels, error)
	GetChannelByListingAndBuyer(ctx context.Context, db sqlc.DBTX, arg sqlc.GetChannelByListingAndBuyerParams) (sqlc.Channels, error)
	AdvanceChannelSeq(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Channels, error)
}

type ChannelRepository struct {
	queries ChannelWriteQueries
	db      sqlc.DBTX
}

func NewChannelRepository(queries ChannelWriteQueries, db sqlc.DBTX) *ChannelRepository {
	return &ChannelRepository{
		queries: queries,
		db:      db,
	}
}

// Insert relies on ON CONFLICT DO NOTHING, so a lost race returns no row
// instead of aborting the surrounding transaction. Both that and a raw unique
// violation come back as KindDuplicateKey.
func (r *ChannelRepository) Insert(ctx context.Context, tx sqlc.DBTX, ch *channel.Channel) (*channel.Channel, error) {
	row, err := r.queries.InsertChannel(ctx, tx, converter.ChannelToInsertParams(ch))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("channel already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert channel", err)
	}
	return converter.ChannelFromRow(row), nil
}

func (r *ChannelRepository) FindByListingAndBuyer(ctx context.Context, tx sqlc.DBTX, listingID, buyerID uuid.UUID) (*channel.Channel, error) {
	row, err := r.queries.GetChannelByListingAndBuyer(ctx, tx, sqlc.GetChannelByListingAndBuyerParams{
		ListingID: listingID,
		BuyerID:   buyerID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find channel by listing and buyer", err)
	}
	return converter.ChannelFromRow(row), nil
}

// AdvanceSeq bumps last_seq and holds the row lock until the tx ends, which
// serializes publishers on one channel.
func (r *ChannelRepository) AdvanceSeq(ctx context.Context, tx sqlc.DBTX, channelID uuid.UUID) (*channel.Channel, error) {
	row, err := r.queries.AdvanceChannelSeq(ctx, tx, channelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to advance channel sequence", err)
	}
	return converter.ChannelFromRow(row), nil
}
