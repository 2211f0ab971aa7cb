package repository

import (
	"context"
	"time"

	"closeout-market/internal/domain/listing"
	"closeout-market/internal/domain/reservation"
	"closeout-market/internal/infra"
	"closeout-market/internal/infra/repository/converter"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingWriteQueries interface {
	CreateListing(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateListingParams) (uuid.UUID, error)
	ReserveItem(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveItemParams) (sqlc.ReserveItemRow, error)
}

type ListingRepository struct {
	queries ListingWriteQueries
	db      sqlc.DBTX
}

func NewListingRepository(queries ListingWriteQueries, db sqlc.DBTX) *ListingRepository {
	return &ListingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ListingRepository) Create(ctx context.Context, tx sqlc.DBTX, l *listing.Listing) (uuid.UUID, error) {
	id, err := r.queries.CreateListing(ctx, tx, converter.ListingToCreateParams(l))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create listing", err)
	}
	return id, nil
}

// Reserve runs the atomic decrement. A precondition miss is reported in the
// outcome, never as an error.
func (r *ListingRepository) Reserve(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID, now time.Time) (shared.ReserveOutcome, error) {
	row, err := r.queries.ReserveItem(ctx, tx, sqlc.ReserveItemParams{
		ListingID: listingID,
		Now:       pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return shared.ReserveOutcome{}, infra.WrapRepoErr("failed to reserve listing", err)
	}

	out := shared.ReserveOutcome{
		OK:     pgconv.BoolFromPgtype(row.Ok),
		Reason: reservation.RejectReason(pgconv.StringFromPgtype(row.Reason)),
	}
	if row.StockLeft.Valid {
		out.StockLeft = int(row.StockLeft.Int32)
	}
	if seller := pgconv.UUIDPtrFromPgtype(row.SellerID); seller != nil {
		out.SellerID = *seller
	}

	if !out.OK && !out.Reason.IsValid() {
		return shared.ReserveOutcome{}, infra.WrapRepoErr("unexpected reserve outcome: "+out.Reason.String(), nil, infra.KindDBFailure)
	}

	return out, nil
}
