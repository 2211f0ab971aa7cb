package queries

import (
	"context"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/pkg/errs"

	"github.com/google/uuid"
)

type ChannelReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ChannelView, error)
	FindByParticipant(ctx context.Context, userID uuid.UUID, limit int32) ([]*ChannelListItem, error)
}

type ChannelQueries interface {
	GetByID(ctx context.Context, principal user.Principal, id uuid.UUID) (*ChannelView, error)
	ListMine(ctx context.Context, principal user.Principal, limit int) ([]*ChannelListItem, error)
}

type channelQueriesImpl struct {
	repo ChannelReadStore
}

func NewChannelQueries(repo ChannelReadStore) ChannelQueries {
	return &channelQueriesImpl{repo: repo}
}

func (q *channelQueriesImpl) GetByID(ctx context.Context, principal user.Principal, id uuid.UUID) (*ChannelView, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, readErr(err)
	}
	if !v.IsParticipant(principal.ID()) {
		return nil, ErrChannelAccess
	}
	return v, nil
}

func (q *channelQueriesImpl) ListMine(ctx context.Context, principal user.Principal, limit int) ([]*ChannelListItem, error) {
	if !principal.IsAuthenticated() {
		return nil, errs.ErrUnauthenticated
	}
	limit = ValidateLimit(limit)
	rows, err := q.repo.FindByParticipant(ctx, principal.ID(), int32(limit)) // #nosec G115 -- bounded by ValidateLimit
	if err != nil {
		return nil, readErr(err)
	}
	if rows == nil {
		rows = []*ChannelListItem{}
	}
	return rows, nil
}
