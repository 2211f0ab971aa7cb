package errs

// Outcome taxonomy shared by the usecase layer and the HTTP mapping.
// Usecases mark lower-level errors with one of these so handlers can switch
// on the category without inspecting infrastructure details.
var (
	ErrNotFound        = New("not found")
	ErrExpired         = New("listing expired")
	ErrSoldOut         = New("listing sold out")
	ErrUnauthenticated = New("unauthenticated")
	ErrForbidden       = New("forbidden")
	ErrUnavailable     = New("service unavailable")
	ErrInvalidInput    = New("invalid input")
	// Conflict never leaves the usecase layer; the channel registry resolves it by re-reading.
	ErrConflict = New("conflict")

	// Idempotency errors
	ErrIdempotencyKeyRequired = New("idempotency key required")
	ErrIdempotencyInProgress  = New("idempotency in progress")
	ErrIdempotencyKeyReused   = New("idempotency key reused with different request")

	ErrDatabaseOperationFailed = New("database operation failed")
)
