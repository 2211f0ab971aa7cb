package repository

import (
	"context"

	"closeout-market/internal/domain/message"
	"closeout-market/internal/infra"
	"closeout-market/internal/infra/repository/converter"
	sqlc "closeout-market/internal/infra/sqlc/generated"
)

type MessageWriteQueries interface {
	InsertMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertMessageParams) (sqlc.Messages, error)
}

type MessageRepository struct {
	queries MessageWriteQueries
	db      sqlc.DBTX
}

func NewMessageRepository(queries MessageWriteQueries, db sqlc.DBTX) *MessageRepository {
	return &MessageRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MessageRepository) Insert(ctx context.Context, tx sqlc.DBTX, msg *message.Message) (*message.Message, error) {
	row, err := r.queries.InsertMessage(ctx, tx, converter.MessageToInsertParams(msg))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert message", err)
	}
	return converter.MessageFromRow(row), nil
}
