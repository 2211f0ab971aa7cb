package queries

import (
	"context"
	"errors"

	"closeout-market/internal/infra"
	"closeout-market/internal/pkg/errs"
)

var (
	ErrInvalidCursor   = errs.Mark(errs.New("invalid cursor"), errs.ErrInvalidInput)
	ErrChannelAccess   = errs.Mark(errs.New("not a participant of this channel"), errs.ErrForbidden)
	ErrInvalidAfterSeq = errs.Mark(errs.New("afterSeq must not be negative"), errs.ErrInvalidInput)
)

// readErr maps a read-store failure onto the outcome taxonomy.
func readErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case errors.Is(err, context.DeadlineExceeded), infra.IsUnavailable(err):
		return errs.Mark(err, errs.ErrUnavailable)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
