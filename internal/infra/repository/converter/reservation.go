package converter

import (
	"closeout-market/internal/domain/reservation"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToAppendParams(res *reservation.Reservation) sqlc.AppendReservationParams {
	reason := pgtype.Text{Valid: false}
	if !res.IsSucceeded() {
		reason = pgconv.StringToPgtype(res.Reason().String())
	}

	return sqlc.AppendReservationParams{
		ID:           res.ID(),
		ListingID:    res.ListingID(),
		BuyerID:      res.BuyerID(),
		Quantity:     int32(res.Quantity()),
		Outcome:      res.Outcome().String(),
		RejectReason: reason,
		AttemptKey:   pgconv.UUIDPtrToPgtype(res.AttemptKey()),
		CreatedAt:    pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationFromRow(r sqlc.Reservations) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID,
		r.ListingID,
		r.BuyerID,
		reservation.Outcome(r.Outcome),
		reservation.RejectReason(pgconv.StringFromPgtype(r.RejectReason)),
		pgconv.UUIDPtrFromPgtype(r.AttemptKey),
		pgconv.TimeFromPgtype(r.CreatedAt),
	)
}
