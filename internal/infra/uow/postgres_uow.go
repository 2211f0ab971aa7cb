package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"closeout-market/internal/domain/channel"
	"closeout-market/internal/domain/reservation"
	"closeout-market/internal/domain/store"
	"closeout-market/internal/infra/readstore"
	"closeout-market/internal/infra/repository"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", slog.Int("attempt", attempt+1), sl.Err(rollbackErr))
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					slog.Int("attempts", attempt+1),
					sl.Err(err))
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			slog.Int("attempt", attempt+1),
			slog.Int64("wait_ms", waitTime.Milliseconds()),
			sl.Err(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", sl.Err(rollbackErr))
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	listingRepo     shared.ListingRepository
	reservationRepo shared.ReservationRepository
	channelRepo     shared.ChannelRepository
	messageRepo     shared.MessageRepository
	storeRepo       shared.StoreRepository
	idempotencyRepo shared.IdempotencyRepository
	outboxRepo      shared.OutboxRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Listings() shared.ListingRepository {
	if t.listingRepo == nil {
		t.listingRepo = repository.NewListingRepository(t.uow.q, t.dbtx)
	}
	return t.listingRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Channels() shared.ChannelRepository {
	if t.channelRepo == nil {
		t.channelRepo = repository.NewChannelRepository(t.uow.q, t.dbtx)
	}
	return t.channelRepo
}

func (t *pgTx) Messages() shared.MessageRepository {
	if t.messageRepo == nil {
		t.messageRepo = repository.NewMessageRepository(t.uow.q, t.dbtx)
	}
	return t.messageRepo
}

func (t *pgTx) Stores() shared.StoreRepository {
	if t.storeRepo == nil {
		t.storeRepo = repository.NewStoreRepository(t.uow.q, t.dbtx)
	}
	return t.storeRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q, t.dbtx)
	}
	return t.outboxRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	listingStore     *readstore.ListingReadStore
	storeStore       *readstore.StoreReadStore
	reservationStore *readstore.ReservationReadStore
	channelStore     *readstore.ChannelReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) ListingByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	if r.listingStore == nil {
		r.listingStore = readstore.NewListingReadStore(r.uow.q, r.dbtx)
	}

	l, err := r.listingStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.ListingSnapshot{
		ID:        l.ID,
		StoreID:   l.StoreID,
		SellerID:  l.SellerID,
		Name:      l.Name,
		Stock:     l.Stock,
		ExpiresAt: l.ExpiresAt,
	}, nil
}

func (r *commandReads) StoreByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	if r.storeStore == nil {
		r.storeStore = readstore.NewStoreReadStore(r.uow.q, r.dbtx)
	}

	v, err := r.storeStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return store.ReconstructStore(v.ID, v.OwnerID, v.Name, v.Address, v.BizNumber, v.VerifiedAt, v.CreatedAt), nil
}

func (r *commandReads) StoreByOwner(ctx context.Context, ownerID uuid.UUID) (*store.Store, error) {
	if r.storeStore == nil {
		r.storeStore = readstore.NewStoreReadStore(r.uow.q, r.dbtx)
	}

	v, err := r.storeStore.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return store.ReconstructStore(v.ID, v.OwnerID, v.Name, v.Address, v.BizNumber, v.VerifiedAt, v.CreatedAt), nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.uow.q, r.dbtx)
	}

	v, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		v.ID,
		v.ListingID,
		v.BuyerID,
		reservation.Outcome(v.Outcome),
		reservation.RejectReason(v.RejectReason),
		nil,
		v.CreatedAt,
	), nil
}

func (r *commandReads) ChannelByID(ctx context.Context, id uuid.UUID) (*channel.Channel, error) {
	if r.channelStore == nil {
		r.channelStore = readstore.NewChannelReadStore(r.uow.q, r.dbtx)
	}

	v, err := r.channelStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return channel.ReconstructChannel(v.ID, v.ListingID, v.BuyerID, v.SellerID, v.LastSeq, v.CreatedAt), nil
}

func (r *commandReads) ChannelByListingAndBuyer(ctx context.Context, listingID, buyerID uuid.UUID) (*channel.Channel, error) {
	if r.channelStore == nil {
		r.channelStore = readstore.NewChannelReadStore(r.uow.q, r.dbtx)
	}

	v, err := r.channelStore.FindByListingAndBuyer(ctx, listingID, buyerID)
	if err != nil {
		return nil, err
	}
	return channel.ReconstructChannel(v.ID, v.ListingID, v.BuyerID, v.SellerID, v.LastSeq, v.CreatedAt), nil
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q)
	}

	return r.idempotencyStore.Get(ctx, r.dbtx, key, userID)
}
