package reservation

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeRejected  Outcome = "rejected"
)

func (o Outcome) String() string {
	return string(o)
}

func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeSucceeded, OutcomeRejected:
		return true
	default:
		return false
	}
}

type RejectReason string

const (
	ReasonNone            RejectReason = ""
	ReasonNotFound        RejectReason = "not_found"
	ReasonExpired         RejectReason = "expired"
	ReasonSoldOut         RejectReason = "sold_out"
	ReasonUnauthenticated RejectReason = "unauthenticated"
)

func (r RejectReason) String() string {
	return string(r)
}

func (r RejectReason) IsValid() bool {
	switch r {
	case ReasonNotFound, ReasonExpired, ReasonSoldOut, ReasonUnauthenticated:
		return true
	default:
		return false
	}
}
