//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"closeout-market/internal/domain/listing"
	"closeout-market/internal/domain/pricing"
	"closeout-market/internal/infra"
	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/queries"
	"closeout-market/tests/common/builder"
	queriesmock "closeout-market/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seoulViewport(t *testing.T) listing.Viewport {
	t.Helper()
	vp, err := listing.NewViewport(37.50, 126.90, 37.60, 127.05)
	require.NoError(t, err)
	return vp
}

// =============================================================================
// InViewport Tests
// =============================================================================

func TestListingQueries_InViewport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		cfg           config.ListingConfig
		limit         int
		expectedLimit int32
		expectedAfter time.Time
	}{
		{
			name:          "success: requested limit is passed through",
			cfg:           config.ListingConfig{MaxViewport: 200},
			limit:         50,
			expectedLimit: 50,
			expectedAfter: now,
		},
		{
			name:          "success: limit capped at configured maximum",
			cfg:           config.ListingConfig{MaxViewport: 100},
			limit:         1000,
			expectedLimit: 100,
			expectedAfter: now,
		},
		{
			name:          "success: zero limit means maximum",
			cfg:           config.ListingConfig{MaxViewport: 100},
			limit:         0,
			expectedLimit: 100,
			expectedAfter: now,
		},
		{
			name:          "success: grace period widens visibility",
			cfg:           config.ListingConfig{MaxViewport: 200, ExpiredGrace: 10 * time.Minute},
			limit:         10,
			expectedLimit: 10,
			expectedAfter: now.Add(-10 * time.Minute),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			vp := seoulViewport(t)
			repo := queriesmock.NewMockListingReadStore(ctrl)
			repo.EXPECT().FindInViewport(ctx, vp, tc.expectedAfter, tc.expectedLimit).Return([]*queries.ListingView{}, nil)

			q := queries.NewListingQueries(repo, clock.NewMockClock(now), tc.cfg)
			views, err := q.InViewport(ctx, vp, tc.limit)

			require.NoError(t, err)
			assert.NotNil(t, views)
		})
	}
}

func TestListingQueries_InViewport_DecoratesViews(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := builder.NewListingBuilder()
	now := b.Now

	golden := builder.NewListingBuilder().ExpiringIn(20 * time.Minute)
	golden.GoldenTimeOptIn = true
	soldOut := builder.NewListingBuilder().WithStock(0)

	rows := []*queries.ListingView{golden.BuildView(), b.BuildView(), soldOut.BuildView()}
	expected := []*queries.ListingView{
		golden.BuildDecoratedView(now),
		b.BuildDecoratedView(now),
		soldOut.BuildDecoratedView(now),
	}
	for i := range rows {
		expected[i].ID = rows[i].ID
	}

	vp := seoulViewport(t)
	repo := queriesmock.NewMockListingReadStore(ctrl)
	repo.EXPECT().FindInViewport(ctx, vp, now, int32(200)).Return(rows, nil)

	q := queries.NewListingQueries(repo, clock.NewMockClock(now), config.ListingConfig{MaxViewport: 200})
	views, err := q.InViewport(ctx, vp, 0)

	require.NoError(t, err)
	if diff := cmp.Diff(expected, views); diff != "" {
		t.Errorf("InViewport mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, views[0].Pricing.IsGoldenTime)
	assert.False(t, views[1].Pricing.IsGoldenTime)
	assert.True(t, views[2].IsSoldOut)
	assert.Equal(t, 50, views[1].DiscountPercent)
}

func TestListingQueries_InViewport_StoreErrors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		err         error
		expectedErr error
	}{
		{
			name:        "error: database failure",
			err:         infra.WrapRepoErr("query failed", errors.New("boom"), infra.KindDBFailure),
			expectedErr: errs.ErrDatabaseOperationFailed,
		},
		{
			name:        "error: database unreachable",
			err:         infra.WrapRepoErr("dial failed", errors.New("refused"), infra.KindUnavailable),
			expectedErr: errs.ErrUnavailable,
		},
		{
			name:        "error: deadline exceeded",
			err:         context.DeadlineExceeded,
			expectedErr: errs.ErrUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := queriesmock.NewMockListingReadStore(ctrl)
			repo.EXPECT().FindInViewport(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			q := queries.NewListingQueries(repo, clock.NewRealClock(), config.ListingConfig{MaxViewport: 200})
			views, err := q.InViewport(ctx, seoulViewport(t), 10)

			require.Error(t, err)
			assert.Nil(t, views)
			assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
		})
	}
}

// =============================================================================
// GetByID Tests
// =============================================================================

func TestListingQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: expired listing is still returned with expired pricing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		b := builder.NewListingBuilder()
		row := b.BuildView()
		repo := queriesmock.NewMockListingReadStore(ctrl)
		repo.EXPECT().FindByID(ctx, row.ID).Return(row, nil)

		clk := clock.NewMockClock(b.ExpiresAt.Add(time.Minute))
		q := queries.NewListingQueries(repo, clk, config.ListingConfig{})
		view, err := q.GetByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, pricing.Window{IsExpired: true}, view.Pricing)
		assert.Equal(t, []string{}, view.MarketingTags)
	})

	t.Run("error: listing not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := uuid.New()
		repo := queriesmock.NewMockListingReadStore(ctrl)
		repo.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound))

		q := queries.NewListingQueries(repo, clock.NewRealClock(), config.ListingConfig{})
		view, err := q.GetByID(ctx, id)

		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}
