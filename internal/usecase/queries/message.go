package queries

import (
	"context"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type MessageReadStore interface {
	// FindAfter returns messages with seq > afterSeq in ascending seq order.
	FindAfter(ctx context.Context, channelID uuid.UUID, afterSeq int64, limit int32) ([]*MessageView, error)
}

type MessageQueries interface {
	History(ctx context.Context, principal user.Principal, channelID uuid.UUID, afterSeq int64, limit int) ([]*MessageView, error)
}

type messageQueriesImpl struct {
	channels ChannelReadStore
	messages MessageReadStore
}

func NewMessageQueries(channels ChannelReadStore, messages MessageReadStore) MessageQueries {
	return &messageQueriesImpl{channels: channels, messages: messages}
}

func (q *messageQueriesImpl) History(
	ctx context.Context,
	principal user.Principal,
	channelID uuid.UUID,
	afterSeq int64,
	limit int,
) ([]*MessageView, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	if afterSeq < 0 {
		return nil, ErrInvalidAfterSeq
	}

	ch, err := q.channels.FindByID(ctx, channelID)
	if err != nil {
		return nil, readErr(err)
	}
	if !ch.IsParticipant(principal.ID()) {
		return nil, ErrChannelAccess
	}

	limit = ValidateLimit(limit)
	rows, err := q.messages.FindAfter(ctx, channelID, afterSeq, int32(limit)) // #nosec G115 -- bounded by ValidateLimit
	if err != nil {
		return nil, readErr(err)
	}
	if rows == nil {
		rows = []*MessageView{}
	}
	return rows, nil
}
