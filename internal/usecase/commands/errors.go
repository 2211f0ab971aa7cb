package commands

import (
	"context"
	"errors"

	"closeout-market/internal/infra"
	"closeout-market/internal/pkg/errs"
)

var (
	ErrStoreRequired       = errs.Mark(errs.New("seller has no registered store"), errs.ErrForbidden)
	ErrStoreAlreadyExists  = errs.New("store already registered for this owner")
	ErrVerificationFailed  = errs.New("business registration could not be verified")
	ErrSellerOwnListing    = errs.Mark(errs.New("sellers cannot reserve or contact their own listing"), errs.ErrForbidden)
	ErrNotChannelMember    = errs.Mark(errs.New("not a participant of this channel"), errs.ErrForbidden)
	ErrIncompleteReplayKey = errs.New("completed idempotency key has no stored result")
)

// classifyStoreErr keeps typed outcomes and folds infrastructure failures into
// Unavailable (unreachable or timed out) or a generic operation failure.
func classifyStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case isTyped(err):
		return err
	case errors.Is(err, context.DeadlineExceeded), infra.IsUnavailable(err):
		return errs.Mark(err, errs.ErrUnavailable)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}

func isTyped(err error) bool {
	for _, target := range []error{
		errs.ErrNotFound,
		errs.ErrExpired,
		errs.ErrSoldOut,
		errs.ErrUnauthenticated,
		errs.ErrForbidden,
		errs.ErrInvalidInput,
		errs.ErrUnavailable,
		errs.ErrIdempotencyKeyRequired,
		errs.ErrIdempotencyInProgress,
		errs.ErrIdempotencyKeyReused,
		ErrStoreAlreadyExists,
		ErrVerificationFailed,
	} {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}
