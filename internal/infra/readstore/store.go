package readstore

import (
	"context"

	"closeout-market/internal/infra"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"
	"closeout-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type StoreViewQueries interface {
	GetStoreByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Stores, error)
	GetStoreByOwnerID(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.Stores, error)
}

type StoreReadStore struct {
	queries StoreViewQueries
	db      sqlc.DBTX
}

func NewStoreReadStore(queries StoreViewQueries, db sqlc.DBTX) *StoreReadStore {
	return &StoreReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StoreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StoreView, error) {
	row, err := r.queries.GetStoreByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by ID", err)
	}
	return storeRowToView(row), nil
}

func (r *StoreReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.StoreView, error) {
	row, err := r.queries.GetStoreByOwnerID(ctx, r.db, ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by owner", err)
	}
	return storeRowToView(row), nil
}

func storeRowToView(row sqlc.Stores) *queries.StoreView {
	return &queries.StoreView{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		Name:       row.Name,
		Address:    row.Address,
		BizNumber:  row.BizNumber,
		Verified:   row.VerifiedAt.Valid,
		VerifiedAt: pgconv.TimePtrFromPgtype(row.VerifiedAt),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
