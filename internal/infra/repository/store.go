package repository

import (
	"context"
	"time"

	"closeout-market/internal/domain/store"
	"closeout-market/internal/infra"
	"closeout-market/internal/infra/repository/converter"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type StoreWriteQueries interface {
	CreateStore(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateStoreParams) (uuid.UUID, error)
	MarkStoreVerified(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkStoreVerifiedParams) (int64, error)
}

type StoreRepository struct {
	queries StoreWriteQueries
	db      sqlc.DBTX
}

func NewStoreRepository(queries StoreWriteQueries, db sqlc.DBTX) *StoreRepository {
	return &StoreRepository{
		queries: queries,
		db:      db,
	}
}

func (r *StoreRepository) Create(ctx context.Context, tx sqlc.DBTX, s *store.Store) (uuid.UUID, error) {
	id, err := r.queries.CreateStore(ctx, tx, converter.StoreToCreateParams(s))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create store", err)
	}
	return id, nil
}

func (r *StoreRepository) MarkVerified(ctx context.Context, tx sqlc.DBTX, storeID uuid.UUID, at time.Time) error {
	affected, err := r.queries.MarkStoreVerified(ctx, tx, sqlc.MarkStoreVerifiedParams{
		ID:         storeID,
		VerifiedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark store verified", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("store not found", nil, infra.KindNotFound)
	}
	return nil
}
