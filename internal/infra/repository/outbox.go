package repository

import (
	"context"

	"closeout-market/internal/infra"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

// maxLastErrorLen keeps broker error strings from bloating the table.
const maxLastErrorLen = 512

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
	ClaimPendingOutboxEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ClaimPendingOutboxEventsRow, error)
	MarkOutboxEventSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Insert(ctx context.Context, tx sqlc.DBTX, aggregateID uuid.UUID, eventType string, payload []byte) error {
	err := r.queries.InsertOutboxEvent(ctx, tx, sqlc.InsertOutboxEventParams{
		AggregateID: aggregateID,
		EventType:   eventType,
		Payload:     payload,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert outbox event", err)
	}
	return nil
}

// ClaimPending locks up to limit pending rows for the current tx (SKIP LOCKED),
// so concurrent relays never publish the same event twice.
func (r *OutboxRepository) ClaimPending(ctx context.Context, tx sqlc.DBTX, limit int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimPendingOutboxEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim pending outbox events", err)
	}

	events := make([]shared.OutboxEvent, len(rows))
	for i, row := range rows {
		events[i] = shared.OutboxEvent{
			ID:          row.ID,
			AggregateID: row.AggregateID,
			EventType:   row.EventType,
			Payload:     row.Payload,
			Attempts:    int(row.Attempts),
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return events, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOutboxEventSent(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, maxAttempts int32) error {
	if len(lastErr) > maxLastErrorLen {
		lastErr = lastErr[:maxLastErrorLen]
	}
	err := r.queries.MarkOutboxEventFailed(ctx, tx, sqlc.MarkOutboxEventFailedParams{
		LastError:   pgconv.StringToPgtype(lastErr),
		MaxAttempts: maxAttempts,
		ID:          id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark outbox event failed", err)
	}
	return nil
}
