package converter

import (
	"closeout-market/internal/domain/store"
	sqlc "closeout-market/internal/infra/sqlc/generated"
	"closeout-market/internal/pkg/pgconv"
)

func StoreToCreateParams(s *store.Store) sqlc.CreateStoreParams {
	return sqlc.CreateStoreParams{
		ID:        s.ID(),
		OwnerID:   s.OwnerID(),
		Name:      s.Name(),
		Address:   s.Address(),
		BizNumber: s.BizNumber(),
		CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func StoreFromRow(r sqlc.Stores) *store.Store {
	return store.ReconstructStore(
		r.ID,
		r.OwnerID,
		r.Name,
		r.Address,
		r.BizNumber,
		pgconv.TimePtrFromPgtype(r.VerifiedAt),
		pgconv.TimeFromPgtype(r.CreatedAt),
	)
}
