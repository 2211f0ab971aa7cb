package readstore

import (
	"context"
	"time"

	"closeout-market/internal/infra"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"
	"closeout-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	ListReservationsByBuyerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByBuyerFirstPageParams) ([]sqlc.ListReservationsByBuyerFirstPageRow, error)
	ListReservationsByBuyerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByBuyerKeysetParams) ([]sqlc.ListReservationsByBuyerKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &queries.ReservationView{
		ID:               row.ID,
		ListingID:        row.ListingID,
		BuyerID:          row.BuyerID,
		Outcome:          row.Outcome,
		RejectReason:     pgconv.StringFromPgtype(row.RejectReason),
		ListingName:      row.ListingName,
		DiscountPrice:    row.DiscountPrice,
		ListingExpiresAt: pgconv.TimeFromPgtype(row.ListingExpiresAt),
		StoreName:        row.StoreName,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *ReservationReadStore) FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByBuyerFirstPage(ctx, r.db, sqlc.ListReservationsByBuyerFirstPageParams{
		BuyerID: buyerID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations first page", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = reservationListItem(sqlc.ListReservationsByBuyerKeysetRow(row))
	}
	return result, nil
}

func (r *ReservationReadStore) FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByBuyerKeyset(ctx, r.db, sqlc.ListReservationsByBuyerKeysetParams{
		BuyerID:   buyerID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations keyset", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = reservationListItem(row)
	}
	return result, nil
}

func reservationListItem(row sqlc.ListReservationsByBuyerKeysetRow) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:               row.ID,
		ListingID:        row.ListingID,
		ListingName:      row.ListingName,
		StoreName:        row.StoreName,
		DiscountPrice:    row.DiscountPrice,
		ListingExpiresAt: pgconv.TimeFromPgtype(row.ListingExpiresAt),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
