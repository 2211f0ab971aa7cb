package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"closeout-market/internal/domain/channel"
	"closeout-market/internal/domain/reservation"
	"closeout-market/internal/domain/user"
	"closeout-market/internal/infra"
	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/pkg/sl"
	"closeout-market/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	reserveEndpoint = "POST /api/reservations"
	// Budget for the audit/release tx that runs after the caller's context is done.
	cleanupTimeout = 2 * time.Second
)

type ReserveResult struct {
	Reservation *reservation.Reservation
	Channel     channel.GetOrCreateResult
	// Replayed is set when the attempt key had already completed and nothing was re-executed.
	Replayed bool
}

type ReservationCommands interface {
	Reserve(ctx context.Context, principal user.Principal, listingID uuid.UUID, attemptKey uuid.UUID) (*ReserveResult, error)
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cfg   config.ReservationConfig
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.ReservationConfig) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, clock: clk, cfg: cfg}
}

type rejectionError struct {
	reason reservation.RejectReason
}

func (e *rejectionError) Error() string {
	return "reservation rejected: " + e.reason.String()
}

func (r *reservationCommandsImpl) Reserve(
	ctx context.Context,
	principal user.Principal,
	listingID uuid.UUID,
	attemptKey uuid.UUID,
) (*ReserveResult, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	if attemptKey == uuid.Nil {
		return nil, errs.ErrIdempotencyKeyRequired
	}

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	buyerID := principal.ID()
	requestHash := reserveRequestHash(listingID)

	replay, err := r.claimAttempt(ctx, attemptKey, buyerID, requestHash)
	if err != nil {
		return nil, classifyStoreErr(err)
	}
	if replay != nil {
		return replay, nil
	}

	result, err := r.execute(ctx, listingID, buyerID, attemptKey)
	if err == nil {
		return result, nil
	}

	var rejected *rejectionError
	if errs.As(err, &rejected) {
		r.recordRejection(ctx, listingID, buyerID, attemptKey, rejected.reason)
		return nil, rejectionToErr(rejected.reason)
	}

	r.releaseAttempt(ctx, attemptKey, buyerID)
	return nil, classifyStoreErr(err)
}

// claimAttempt reserves the attempt key for this call. A non-nil result means
// the key already completed and the stored outcome is replayed.
func (r *reservationCommandsImpl) claimAttempt(
	ctx context.Context,
	key, buyerID uuid.UUID,
	requestHash string,
) (*ReserveResult, error) {
	now := r.clock.Now()
	expiresAt := now.Add(r.cfg.IdempotencyTTL)

	var record *shared.IdempotencyRecord
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		record = nil
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, buyerID, reserveEndpoint, requestHash, expiresAt)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}

		existing, err := tx.Reads().IdempotencyByKey(ctx, key, buyerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Released between our insert and read; the caller may retry.
				return errs.ErrIdempotencyInProgress
			}
			return err
		}
		if existing.RequestHash != requestHash {
			return errs.ErrIdempotencyKeyReused
		}
		if existing.IsCompleted() {
			record = existing
			return nil
		}
		if !existing.ExpiredAt(now) {
			return errs.ErrIdempotencyInProgress
		}

		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, buyerID, reserveEndpoint, requestHash, expiresAt, now)
		if err != nil {
			return err
		}
		if !claimed {
			return errs.ErrIdempotencyInProgress
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return r.replay(ctx, record)
}

func (r *reservationCommandsImpl) replay(ctx context.Context, record *shared.IdempotencyRecord) (*ReserveResult, error) {
	if record.ResultReservationID == nil || record.ResultChannelID == nil {
		return nil, ErrIncompleteReplayKey
	}

	reads := r.uow.CommandReads()
	res, err := reads.ReservationByID(ctx, *record.ResultReservationID)
	if err != nil {
		return nil, err
	}
	ch, err := reads.ChannelByID(ctx, *record.ResultChannelID)
	if err != nil {
		return nil, err
	}

	return &ReserveResult{
		Reservation: res,
		Channel:     channel.AlreadyExists(ch),
		Replayed:    true,
	}, nil
}

func (r *reservationCommandsImpl) execute(
	ctx context.Context,
	listingID, buyerID, attemptKey uuid.UUID,
) (*ReserveResult, error) {
	var result *ReserveResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		now := r.clock.Now()

		outcome, err := tx.Listings().Reserve(ctx, tx.DB(), listingID, now)
		if err != nil {
			return err
		}
		if !outcome.OK {
			return &rejectionError{reason: outcome.Reason}
		}
		if outcome.SellerID == buyerID {
			return ErrSellerOwnListing
		}

		res, err := reservation.Succeeded(listingID, buyerID, &attemptKey, now)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidInput)
		}
		if err = tx.Reservations().Append(ctx, tx.DB(), res); err != nil {
			return err
		}

		ch, err := channel.NewChannel(listingID, buyerID, outcome.SellerID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidInput)
		}
		got, err := getOrCreateInTx(ctx, tx, ch)
		if err != nil {
			return err
		}

		payload, err := json.Marshal(reservationSucceededEvent{
			ReservationID: res.ID(),
			ListingID:     listingID,
			BuyerID:       buyerID,
			SellerID:      outcome.SellerID,
			ChannelID:     got.Channel.ID(),
			StockLeft:     outcome.StockLeft,
			ReservedAt:    now,
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode reservation.succeeded event")
		}
		if err = tx.Outbox().Insert(ctx, tx.DB(), res.ID(), shared.EventReservationSucceeded, payload); err != nil {
			return err
		}

		if err = tx.Idempotency().Complete(ctx, tx.DB(), attemptKey, buyerID, res.ID(), got.Channel.ID()); err != nil {
			return err
		}

		result = &ReserveResult{Reservation: res, Channel: got}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// recordRejection appends the audit row and frees the key in one tx. It runs on
// a detached context so a caller that already gave up still leaves the key retryable.
func (r *reservationCommandsImpl) recordRejection(
	ctx context.Context,
	listingID, buyerID, attemptKey uuid.UUID,
	reason reservation.RejectReason,
) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	err := r.uow.Within(cctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := reservation.Rejected(listingID, buyerID, &attemptKey, reason, r.clock.Now())
		if err != nil {
			return err
		}
		if err = tx.Reservations().Append(ctx, tx.DB(), res); err != nil {
			return err
		}
		return tx.Idempotency().Release(ctx, tx.DB(), attemptKey, buyerID)
	})
	if err == nil {
		return
	}

	slog.Warn("failed to record rejected reservation",
		slog.String("listing_id", listingID.String()),
		slog.String("reason", reason.String()),
		sl.Err(err))
	r.releaseAttempt(ctx, attemptKey, buyerID)
}

func (r *reservationCommandsImpl) releaseAttempt(ctx context.Context, key, buyerID uuid.UUID) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	err := r.uow.Within(cctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), key, buyerID)
	})
	if err != nil {
		slog.Error("failed to release idempotency key",
			slog.String("key", key.String()),
			sl.Err(err))
	}
}

func rejectionToErr(reason reservation.RejectReason) error {
	switch reason {
	case reservation.ReasonNotFound:
		return errs.ErrNotFound
	case reservation.ReasonExpired:
		return errs.ErrExpired
	case reservation.ReasonSoldOut:
		return errs.ErrSoldOut
	case reservation.ReasonUnauthenticated:
		return errs.ErrUnauthenticated
	default:
		return errs.Wrapf(errs.ErrDatabaseOperationFailed, "unknown reject reason %q", reason)
	}
}

func reserveRequestHash(listingID uuid.UUID) string {
	sum := sha256.Sum256([]byte(reserveEndpoint + ":" + listingID.String()))
	return hex.EncodeToString(sum[:])
}
