//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/commands"
	"closeout-market/internal/usecase/shared"
	"closeout-market/tests/common/builder"
	"closeout-market/tests/common/fakestore"
	sharedmock "closeout-market/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Listing Tests
// =============================================================================

func TestListingCommands_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		role         user.Role
		hasStore     bool
		mutate       func(*builder.ListingBuilder)
		setupCopyGen func(*sharedmock.MockCopyGenerator)
		expectedErr  error
		expectCopy   string
		expectTags   []string
	}{
		{
			name:     "success: listing created with marketing copy",
			role:     user.RoleSeller,
			hasStore: true,
			setupCopyGen: func(m *sharedmock.MockCopyGenerator) {
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(&shared.MarketingCopy{
					Copy: "Fresh croissants at half price",
					Tags: []string{"#bakery", "bakery", " halfprice "},
				}, nil)
			},
			expectCopy: "Fresh croissants at half price",
			expectTags: []string{"bakery", "halfprice"},
		},
		{
			name:     "success: generator failure still creates the listing",
			role:     user.RoleSeller,
			hasStore: true,
			setupCopyGen: func(m *sharedmock.MockCopyGenerator) {
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, errors.New("upstream 503"))
			},
		},
		{
			name:     "success: admin may list for own store",
			role:     user.RoleAdmin,
			hasStore: true,
			setupCopyGen: func(m *sharedmock.MockCopyGenerator) {
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(&shared.MarketingCopy{}, nil)
			},
		},
		{
			name:        "error: buyer cannot list",
			role:        user.RoleBuyer,
			hasStore:    true,
			expectedErr: errs.ErrForbidden,
		},
		{
			name:        "error: seller without store",
			role:        user.RoleSeller,
			hasStore:    false,
			expectedErr: commands.ErrStoreRequired,
		},
		{
			name:        "error: discount above original price",
			role:        user.RoleSeller,
			hasStore:    true,
			mutate:      func(b *builder.ListingBuilder) { b.DiscountPrice = b.OriginalPrice + 1 },
			expectedErr: errs.ErrInvalidInput,
		},
		{
			name:        "error: expiry already passed",
			role:        user.RoleSeller,
			hasStore:    true,
			mutate:      func(b *builder.ListingBuilder) { b.ExpiresAt = b.Now.Add(-time.Minute) },
			expectedErr: errs.ErrInvalidInput,
		},
		{
			name:        "error: coordinates out of range",
			role:        user.RoleSeller,
			hasStore:    true,
			mutate:      func(b *builder.ListingBuilder) { b.Lat = 91 },
			expectedErr: errs.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ownerID := uuid.New()
			fs := fakestore.New()
			st := builder.NewStoreBuilder().WithOwner(ownerID).BuildDomain()
			if tc.hasStore {
				fs.SeedStore(st)
			}

			lb := builder.NewListingBuilder()
			if tc.mutate != nil {
				lb.With(tc.mutate)
			}

			copyGen := sharedmock.NewMockCopyGenerator(ctrl)
			if tc.setupCopyGen != nil {
				tc.setupCopyGen(copyGen)
			}

			cmds := commands.NewListingCommands(fs, copyGen, clock.NewMockClock(lb.Now), config.CollaboratorsConfig{CopyGenTimeout: time.Second})

			id, err := cmds.Create(ctx, user.NewPrincipal(ownerID, tc.role), lb.BuildInput())

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}

			require.NoError(t, err)
			saved, ok := fs.Listing(id)
			require.True(t, ok)
			assert.Equal(t, st.ID(), saved.StoreID())
			assert.Equal(t, lb.Name, saved.Name())
			assert.Equal(t, lb.Stock, saved.Stock())
			assert.Equal(t, tc.expectCopy, saved.MarketingCopy())
			if tc.expectTags != nil {
				assert.Equal(t, tc.expectTags, saved.MarketingTags())
			} else {
				assert.Empty(t, saved.MarketingTags())
			}
		})
	}
}

func TestListingCommands_Create_GeneratorTimeoutIsBounded(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	fs := fakestore.New()
	fs.SeedStore(builder.NewStoreBuilder().WithOwner(ownerID).BuildDomain())

	copyGen := sharedmock.NewMockCopyGenerator(ctrl)
	copyGen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ shared.CopyRequest) (*shared.MarketingCopy, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	lb := builder.NewListingBuilder()
	cmds := commands.NewListingCommands(fs, copyGen, clock.NewMockClock(lb.Now), config.CollaboratorsConfig{CopyGenTimeout: 20 * time.Millisecond})

	start := time.Now()
	id, err := cmds.Create(ctx, user.NewPrincipal(ownerID, user.RoleSeller), lb.BuildInput())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
	saved, ok := fs.Listing(id)
	require.True(t, ok)
	assert.Empty(t, saved.MarketingCopy())
}
