package channel

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSelfChannel = errors.New("buyer and seller must differ")

// Channel is the negotiation room for one (listing, buyer) pair.
type Channel struct {
	id        uuid.UUID
	listingID uuid.UUID
	buyerID   uuid.UUID
	sellerID  uuid.UUID
	lastSeq   int64
	createdAt time.Time
}

func NewChannel(listingID, buyerID, sellerID uuid.UUID, now time.Time) (*Channel, error) {
	if buyerID == sellerID {
		return nil, ErrSelfChannel
	}
	return &Channel{
		id:        uuid.New(),
		listingID: listingID,
		buyerID:   buyerID,
		sellerID:  sellerID,
		createdAt: now,
	}, nil
}

func ReconstructChannel(id, listingID, buyerID, sellerID uuid.UUID, lastSeq int64, createdAt time.Time) *Channel {
	return &Channel{
		id:        id,
		listingID: listingID,
		buyerID:   buyerID,
		sellerID:  sellerID,
		lastSeq:   lastSeq,
		createdAt: createdAt,
	}
}

func (c *Channel) IsParticipant(userID uuid.UUID) bool {
	return userID != uuid.Nil && (userID == c.buyerID || userID == c.sellerID)
}

// Counterpart returns the other participant, or uuid.Nil for outsiders.
func (c *Channel) Counterpart(userID uuid.UUID) uuid.UUID {
	switch userID {
	case c.buyerID:
		return c.sellerID
	case c.sellerID:
		return c.buyerID
	default:
		return uuid.Nil
	}
}

func (c *Channel) ID() uuid.UUID        { return c.id }
func (c *Channel) ListingID() uuid.UUID { return c.listingID }
func (c *Channel) BuyerID() uuid.UUID   { return c.buyerID }
func (c *Channel) SellerID() uuid.UUID  { return c.sellerID }
func (c *Channel) LastSeq() int64       { return c.lastSeq }
func (c *Channel) CreatedAt() time.Time { return c.createdAt }

// GetOrCreateResult tags whether the registry inserted the channel or found it.
type GetOrCreateResult struct {
	Channel *Channel
	created bool
}

func Created(ch *Channel) GetOrCreateResult {
	return GetOrCreateResult{Channel: ch, created: true}
}

func AlreadyExists(ch *Channel) GetOrCreateResult {
	return GetOrCreateResult{Channel: ch}
}

func (r GetOrCreateResult) Created() bool       { return r.created }
func (r GetOrCreateResult) AlreadyExists() bool { return !r.created }
