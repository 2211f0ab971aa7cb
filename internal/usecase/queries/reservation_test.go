//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/infra"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/queries"
	"closeout-market/tests/common/builder"
	queriesmock "closeout-market/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// GetByID Tests
// =============================================================================

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()

	testCases := []struct {
		name        string
		principal   user.Principal
		setupMock   func(*queriesmock.MockReservationReadStore, *queries.ReservationView)
		expectedErr error
	}{
		{
			name:      "success: buyer reads own reservation",
			principal: user.NewPrincipal(buyerID, user.RoleBuyer),
			setupMock: func(m *queriesmock.MockReservationReadStore, v *queries.ReservationView) {
				m.EXPECT().FindByID(ctx, v.ID).Return(v, nil)
			},
		},
		{
			name:      "success: admin reads any reservation",
			principal: user.NewPrincipal(uuid.New(), user.RoleAdmin),
			setupMock: func(m *queriesmock.MockReservationReadStore, v *queries.ReservationView) {
				m.EXPECT().FindByID(ctx, v.ID).Return(v, nil)
			},
		},
		{
			name:      "error: another buyer sees not found",
			principal: user.NewPrincipal(uuid.New(), user.RoleBuyer),
			setupMock: func(m *queriesmock.MockReservationReadStore, v *queries.ReservationView) {
				m.EXPECT().FindByID(ctx, v.ID).Return(v, nil)
			},
			expectedErr: errs.ErrNotFound,
		},
		{
			name:      "error: reservation missing",
			principal: user.NewPrincipal(buyerID, user.RoleBuyer),
			setupMock: func(m *queriesmock.MockReservationReadStore, v *queries.ReservationView) {
				m.EXPECT().FindByID(ctx, v.ID).Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))
			},
			expectedErr: errs.ErrNotFound,
		},
		{
			name:        "error: anonymous caller",
			principal:   user.Anonymous(),
			setupMock:   func(*queriesmock.MockReservationReadStore, *queries.ReservationView) {},
			expectedErr: errs.ErrUnauthenticated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.BuyerID = buyerID }).BuildView()
			repo := queriesmock.NewMockReservationReadStore(ctrl)
			tc.setupMock(repo, view)

			got, err := queries.NewReservationQueries(repo).GetByID(ctx, tc.principal, view.ID)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, view, got)
		})
	}
}

// =============================================================================
// ListMine Tests
// =============================================================================

func TestReservationQueries_ListMine_Paging(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := user.NewPrincipal(uuid.New(), user.RoleBuyer)
	base := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	items := make([]*queries.ReservationListItem, 0, 3)
	for i := range 3 {
		item := builder.NewReservationBuilder().BuildListItem()
		item.CreatedAt = base.Add(-time.Duration(i) * time.Minute)
		items = append(items, item)
	}

	repo := queriesmock.NewMockReservationReadStore(ctrl)
	repo.EXPECT().FindByBuyerFirstPage(ctx, p.ID(), int32(3)).Return(items, nil)

	q := queries.NewReservationQueries(repo)
	page, next, err := q.ListMine(ctx, p, nil, 2)

	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotNil(t, next)

	lastAt, lastID, err := queries.DecodeAfterCursor(next.After)
	require.NoError(t, err)
	assert.True(t, items[1].CreatedAt.Equal(lastAt))
	assert.Equal(t, items[1].ID, lastID)

	repo.EXPECT().
		FindByBuyerKeyset(ctx, p.ID(), gomock.Any(), items[1].ID, int32(3)).
		Return(items[2:], nil)

	page, next, err = q.ListMine(ctx, p, next, 2)

	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Nil(t, next)
}

func TestReservationQueries_ListMine_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("error: malformed cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := queriesmock.NewMockReservationReadStore(ctrl)
		_, _, err := queries.NewReservationQueries(repo).ListMine(ctx, user.NewPrincipal(uuid.New(), user.RoleBuyer), &queries.Cursor{After: "garbage"}, 10)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})

	t.Run("success: empty result is an empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		p := user.NewPrincipal(uuid.New(), user.RoleBuyer)
		repo := queriesmock.NewMockReservationReadStore(ctrl)
		repo.EXPECT().FindByBuyerFirstPage(ctx, p.ID(), int32(queries.DefaultListLimit+1)).Return(nil, nil)

		page, next, err := queries.NewReservationQueries(repo).ListMine(ctx, p, nil, 0)

		require.NoError(t, err)
		assert.NotNil(t, page)
		assert.Empty(t, page)
		assert.Nil(t, next)
	})
}
