package readstore

import (
	"context"
	"time"

	"closeout-market/internal/domain/listing"
	"closeout-market/internal/infra"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"
	"closeout-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingViewQueries interface {
	GetListingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetListingByIDRow, error)
	GetListingsInViewport(ctx context.Context, db sqlc.DBTX, arg sqlc.GetListingsInViewportParams) ([]sqlc.GetListingsInViewportRow, error)
}

type ListingReadStore struct {
	queries ListingViewQueries
	db      sqlc.DBTX
}

func NewListingReadStore(queries ListingViewQueries, db sqlc.DBTX) *ListingReadStore {
	return &ListingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	row, err := r.queries.GetListingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by ID", err)
	}
	return listingRowToView(sqlc.GetListingsInViewportRow(row)), nil
}

// FindInViewport returns listings inside vp (inclusive bounds) that expire after
// visibleAfter, sold-out ones included.
func (r *ListingReadStore) FindInViewport(ctx context.Context, vp listing.Viewport, visibleAfter time.Time, limit int32) ([]*queries.ListingView, error) {
	rows, err := r.queries.GetListingsInViewport(ctx, r.db, sqlc.GetListingsInViewportParams{
		MinLat:       vp.MinLat(),
		MaxLat:       vp.MaxLat(),
		MinLng:       vp.MinLng(),
		MaxLng:       vp.MaxLng(),
		VisibleAfter: pgconv.TimeToPgtype(visibleAfter),
		RowLimit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query listings in viewport", err)
	}

	result := make([]*queries.ListingView, len(rows))
	for i, row := range rows {
		result[i] = listingRowToView(row)
	}
	return result, nil
}

func listingRowToView(row sqlc.GetListingsInViewportRow) *queries.ListingView {
	tags := row.MarketingTags
	if tags == nil {
		tags = []string{}
	}
	return &queries.ListingView{
		ID:              row.ID,
		StoreID:         row.StoreID,
		SellerID:        row.SellerID,
		StoreName:       row.StoreName,
		StoreAddress:    row.StoreAddress,
		Name:            row.Name,
		Description:     pgconv.StringFromPgtype(row.Description),
		OriginalPrice:   row.OriginalPrice,
		DiscountPrice:   row.DiscountPrice,
		Stock:           int(row.Stock),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
		GoldenTimeOptIn: row.GoldenTimeOptIn,
		Lat:             row.Lat,
		Lng:             row.Lng,
		ImageURL:        pgconv.StringFromPgtype(row.ImageUrl),
		MarketingCopy:   pgconv.StringFromPgtype(row.MarketingCopy),
		MarketingTags:   tags,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
