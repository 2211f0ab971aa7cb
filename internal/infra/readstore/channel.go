package readstore

import (
	"context"

	"closeout-market/internal/infra"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"
	"closeout-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ChannelViewQueries interface {
	GetChannelByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Channels, error)
	GetChannelByListingAndBuyer(ctx context.Context, db sqlc.DBTX, arg sqlc.GetChannelByListingAndBuyerParams) (sqlc.Channels, error)
	ListChannelsByParticipant(ctx context.Context, db sqlc.DBTX, arg sqlc.ListChannelsByParticipantParams) ([]sqlc.ListChannelsByParticipantRow, error)
}

type ChannelReadStore struct {
	queries ChannelViewQueries
	db      sqlc.DBTX
}

func NewChannelReadStore(queries ChannelViewQueries, db sqlc.DBTX) *ChannelReadStore {
	return &ChannelReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ChannelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ChannelView, error) {
	row, err := r.queries.GetChannelByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("channel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find channel by ID", err)
	}
	return channelRowToView(row), nil
}

func (r *ChannelReadStore) FindByListingAndBuyer(ctx context.Context, listingID, buyerID uuid.UUID) (*queries.ChannelView, error) {
	row, err := r.queries.GetChannelByListingAndBuyer(ctx, r.db, sqlc.GetChannelByListingAndBuyerParams{
		ListingID: listingID,
		BuyerID:   buyerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("channel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find channel by listing and buyer", err)
	}
	return channelRowToView(row), nil
}

func (r *ChannelReadStore) FindByParticipant(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ChannelListItem, error) {
	rows, err := r.queries.ListChannelsByParticipant(ctx, r.db, sqlc.ListChannelsByParticipantParams{
		UserID:   userID,
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list channels", err)
	}

	result := make([]*queries.ChannelListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ChannelListItem{
			ChannelView: queries.ChannelView{
				ID:        row.ID,
				ListingID: row.ListingID,
				BuyerID:   row.BuyerID,
				SellerID:  row.SellerID,
				LastSeq:   row.LastSeq,
				CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
			},
			ListingName: row.ListingName,
			StoreName:   row.StoreName,
		}
	}
	return result, nil
}

func channelRowToView(row sqlc.Channels) *queries.ChannelView {
	return &queries.ChannelView{
		ID:        row.ID,
		ListingID: row.ListingID,
		BuyerID:   row.BuyerID,
		SellerID:  row.SellerID,
		LastSeq:   row.LastSeq,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
