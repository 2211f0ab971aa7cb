package queries

import (
	"context"
	"time"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, principal user.Principal, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, principal user.Principal, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, principal user.Principal, id uuid.UUID) (*ReservationView, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readErr(err)
	}
	// Other buyers' reservations are reported as missing.
	if v.BuyerID != principal.ID() && principal.Role() != user.RoleAdmin {
		return nil, errs.ErrNotFound
	}
	return v, nil
}

// ListMine pages the caller's successful reservations, newest first.
func (q *reservationQueriesImpl) ListMine(ctx context.Context, principal user.Principal, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if !principal.IsAuthenticated() {
		return nil, nil, errs.ErrUnauthenticated
	}

	limit = ValidateLimit(limit)
	fetch := int32(limit + 1) // #nosec G115 -- bounded by ValidateLimit

	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByBuyerFirstPage(ctx, principal.ID(), fetch)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.FindByBuyerKeyset(ctx, principal.ID(), lastCreatedAt, lastID, fetch)
	}
	if err != nil {
		return nil, nil, readErr(err)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	if rows == nil {
		rows = []*ReservationListItem{}
	}
	return rows, next, nil
}
