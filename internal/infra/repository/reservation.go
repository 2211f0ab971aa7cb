package repository

import (
	"context"

	"closeout-market/internal/domain/reservation"
	"closeout-market/internal/infra"
	"closeout-market/internal/infra/repository/converter"
	sqlc "closeout-market/internal/infra/sqlc/generated"
)

type ReservationWriteQueries interface {
	AppendReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.AppendReservationParams) error
}

// ReservationRepository only appends; the ledger is never updated in place.
type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Append(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.queries.AppendReservation(ctx, tx, converter.ReservationToAppendParams(res)); err != nil {
		return infra.WrapRepoErr("failed to append reservation", err)
	}
	return nil
}
