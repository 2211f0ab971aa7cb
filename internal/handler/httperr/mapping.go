package httperr

import (
	"net/http"

	"closeout-market/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type mapping struct {
	target error
	status int
	code   string
	msg    string
}

// Order matters: the first marker an error carries wins.
var outcomeMappings = []mapping{
	{errs.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated", "Authentication required"},
	{errs.ErrForbidden, http.StatusForbidden, "forbidden", "Not allowed"},
	{errs.ErrNotFound, http.StatusNotFound, "not_found", "Not found"},
	{errs.ErrExpired, http.StatusGone, "expired", "Listing has expired"},
	{errs.ErrSoldOut, http.StatusConflict, "sold_out", "Listing is sold out"},
	{errs.ErrIdempotencyKeyRequired, http.StatusBadRequest, "idempotency_key_required", "Idempotency-Key header required"},
	{errs.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "idempotency_key_reused", "Idempotency key was used for a different request"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "in_progress", "Request is already being processed"},
	{errs.ErrInvalidInput, http.StatusBadRequest, "invalid_input", ""},
	{errs.ErrUnavailable, http.StatusServiceUnavailable, "unavailable", "Service temporarily unavailable"},
}

// Extra maps usecase-specific errors that sit outside the shared taxonomy.
type Extra struct {
	Target error
	Status int
	Code   string
	Msg    string
}

// Respond writes the status for a usecase error. Invalid-input errors expose
// their message; everything unmapped becomes a 500.
func Respond(c *gin.Context, err error, extras ...Extra) {
	for _, e := range extras {
		if errs.Is(err, e.Target) {
			abort(c, e.Status, err, e.Code, e.Msg, nil)
			return
		}
	}
	for _, m := range outcomeMappings {
		if errs.Is(err, m.target) {
			msg := m.msg
			if msg == "" {
				msg = rootMessage(err)
			}
			if m.status == http.StatusServiceUnavailable {
				c.Header("Retry-After", "1")
			}
			abort(c, m.status, err, m.code, msg, nil)
			return
		}
	}
	abort(c, http.StatusInternalServerError, err, "internal", "Internal server error", nil)
}

func rootMessage(err error) string {
	cause := errs.Cause(err)
	if cause == nil {
		return "Invalid request"
	}
	return cause.Error()
}
