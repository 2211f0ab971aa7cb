package readstore

import (
	"context"

	"closeout-market/internal/infra"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"
	"closeout-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageViewQueries interface {
	ListMessagesAfter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMessagesAfterParams) ([]sqlc.Messages, error)
}

type MessageReadStore struct {
	queries MessageViewQueries
	db      sqlc.DBTX
}

func NewMessageReadStore(queries MessageViewQueries, db sqlc.DBTX) *MessageReadStore {
	return &MessageReadStore{
		queries: queries,
		db:      db,
	}
}

// FindAfter returns up to limit messages with seq > afterSeq in ascending seq order.
func (r *MessageReadStore) FindAfter(ctx context.Context, channelID uuid.UUID, afterSeq int64, limit int32) ([]*queries.MessageView, error) {
	rows, err := r.queries.ListMessagesAfter(ctx, r.db, sqlc.ListMessagesAfterParams{
		ChannelID: channelID,
		Seq:       afterSeq,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list messages", err)
	}

	result := make([]*queries.MessageView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MessageView{
			ID:        row.ID,
			ChannelID: row.ChannelID,
			Seq:       row.Seq,
			SenderID:  row.SenderID,
			Body:      row.Body,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
