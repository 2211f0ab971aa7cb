package shared

import (
	"context"
	"time"

	"closeout-market/internal/domain/store"
	"closeout-market/internal/domain/user"

	"github.com/google/uuid"
)

// TokenValidator turns an identity token into a principal. Issuance lives with
// the identity provider.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Principal, error)
}

type CopyRequest struct {
	Name          string
	Description   string
	OriginalPrice int64
	DiscountPrice int64
	ExpiresAt     time.Time
}

type MarketingCopy struct {
	Copy string
	Tags []string
}

// CopyGenerator annotates a listing with marketing copy. Purely additive.
type CopyGenerator interface {
	Generate(ctx context.Context, req CopyRequest) (*MarketingCopy, error)
}

type BusinessVerifier interface {
	Verify(ctx context.Context, reg store.Registration) (bool, error)
}

// MessageTransport is the live pub/sub primitive keyed by channel id.
// Delivery is at-least-once and unordered across publishers.
type MessageTransport interface {
	Publish(ctx context.Context, channelID uuid.UUID, payload []byte) error
	Subscribe(ctx context.Context, channelID uuid.UUID) (TransportSubscription, error)
}

type TransportSubscription interface {
	Messages() <-chan []byte
	Close() error
}

// EventPublisher is the broker the outbox relay forwards to.
type EventPublisher interface {
	Publish(ctx context.Context, key, eventType string, payload []byte) error
	Close() error
}
