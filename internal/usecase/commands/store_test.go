//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"closeout-market/internal/domain/store"
	"closeout-market/internal/domain/user"
	"closeout-market/internal/pkg/clock"
	"closeout-market/internal/pkg/config"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/commands"
	"closeout-market/tests/common/builder"
	"closeout-market/tests/common/fakestore"
	sharedmock "closeout-market/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var storeNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newStoreCommands(fs *fakestore.Store, verifier *sharedmock.MockBusinessVerifier) commands.StoreCommands {
	return commands.NewStoreCommands(fs, verifier, clock.NewMockClock(storeNow), config.CollaboratorsConfig{VerifierTimeout: time.Second})
}

// =============================================================================
// Register Store Tests
// =============================================================================

func TestStoreCommands_Register(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		role        user.Role
		existing    bool
		mutate      func(*builder.StoreBuilder)
		expectedErr error
	}{
		{
			name: "success: seller registers a store",
			role: user.RoleSeller,
		},
		{
			name:   "success: business number with separators is normalized",
			role:   user.RoleSeller,
			mutate: func(b *builder.StoreBuilder) { b.BizNumber = "123-45-67890" },
		},
		{
			name:        "error: buyer cannot register",
			role:        user.RoleBuyer,
			expectedErr: errs.ErrForbidden,
		},
		{
			name:        "error: owner already has a store",
			role:        user.RoleSeller,
			existing:    true,
			expectedErr: commands.ErrStoreAlreadyExists,
		},
		{
			name:        "error: malformed business number",
			role:        user.RoleSeller,
			mutate:      func(b *builder.StoreBuilder) { b.BizNumber = "12345" },
			expectedErr: errs.ErrInvalidInput,
		},
		{
			name:        "error: blank store name",
			role:        user.RoleSeller,
			mutate:      func(b *builder.StoreBuilder) { b.Name = "  " },
			expectedErr: errs.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fs := fakestore.New()
			sb := builder.NewStoreBuilder()
			if tc.mutate != nil {
				sb.With(tc.mutate)
			}
			if tc.existing {
				fs.SeedStore(builder.NewStoreBuilder().WithOwner(sb.OwnerID).BuildDomain())
			}
			cmds := newStoreCommands(fs, sharedmock.NewMockBusinessVerifier(ctrl))

			id, err := cmds.Register(ctx, user.NewPrincipal(sb.OwnerID, tc.role), sb.BuildRegisterInput())

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
				assert.Equal(t, uuid.Nil, id)
				return
			}

			require.NoError(t, err)
			saved, ok := fs.StoreByID(id)
			require.True(t, ok)
			assert.Equal(t, sb.OwnerID, saved.OwnerID())
			assert.Equal(t, "1234567890", saved.BizNumber())
			assert.False(t, saved.IsVerified())
			assert.Equal(t, storeNow, saved.CreatedAt())
		})
	}
}

// =============================================================================
// Verify Store Tests
// =============================================================================

func TestStoreCommands_Verify(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		verified      bool
		asStranger    bool
		asAdmin       bool
		mutate        func(*builder.StoreBuilder)
		setupVerifier func(*sharedmock.MockBusinessVerifier, *builder.StoreBuilder)
		expectedErr   error
		expectVerify  bool
	}{
		{
			name: "success: registration confirmed",
			setupVerifier: func(m *sharedmock.MockBusinessVerifier, sb *builder.StoreBuilder) {
				m.EXPECT().Verify(gomock.Any(), store.Registration{
					BizNumber: sb.BizNumber,
					OwnerName: sb.OwnerName,
					StartDate: sb.StartDate,
				}).Return(true, nil)
			},
			expectVerify: true,
		},
		{
			name:    "success: admin verifies on behalf of owner",
			asAdmin: true,
			setupVerifier: func(m *sharedmock.MockBusinessVerifier, _ *builder.StoreBuilder) {
				m.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectVerify: true,
		},
		{
			name:         "success: already verified store skips the lookup",
			verified:     true,
			expectVerify: true,
		},
		{
			name: "error: registration rejected",
			setupVerifier: func(m *sharedmock.MockBusinessVerifier, _ *builder.StoreBuilder) {
				m.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: commands.ErrVerificationFailed,
		},
		{
			name: "error: verification service down",
			setupVerifier: func(m *sharedmock.MockBusinessVerifier, _ *builder.StoreBuilder) {
				m.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false, errors.New("dial tcp: i/o timeout"))
			},
			expectedErr: errs.ErrUnavailable,
		},
		{
			name:        "error: caller does not own the store",
			asStranger:  true,
			expectedErr: errs.ErrForbidden,
		},
		{
			name:        "error: malformed start date",
			mutate:      func(b *builder.StoreBuilder) { b.StartDate = "2020-13-45" },
			expectedErr: errs.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sb := builder.NewStoreBuilder()
			if tc.verified {
				sb.Verified()
			}
			if tc.mutate != nil {
				sb.With(tc.mutate)
			}
			fs := fakestore.New()
			fs.SeedStore(sb.BuildDomain())

			verifier := sharedmock.NewMockBusinessVerifier(ctrl)
			if tc.setupVerifier != nil {
				tc.setupVerifier(verifier, sb)
			}
			cmds := newStoreCommands(fs, verifier)

			p := user.NewPrincipal(sb.OwnerID, user.RoleSeller)
			switch {
			case tc.asStranger:
				p = user.NewPrincipal(uuid.New(), user.RoleSeller)
			case tc.asAdmin:
				p = user.NewPrincipal(uuid.New(), user.RoleAdmin)
			}

			err := cmds.Verify(ctx, p, sb.ID, sb.BuildVerifyInput())

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
			} else {
				require.NoError(t, err)
			}

			saved, ok := fs.StoreByID(sb.ID)
			require.True(t, ok)
			assert.Equal(t, tc.expectVerify, saved.IsVerified())
		})
	}
}

func TestStoreCommands_Verify_UnknownStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cmds := newStoreCommands(fakestore.New(), sharedmock.NewMockBusinessVerifier(ctrl))

	err := cmds.Verify(context.Background(), user.NewPrincipal(uuid.New(), user.RoleSeller), uuid.New(), commands.VerifyStoreInput{
		OwnerName: "Kim Minji",
		StartDate: "20200115",
	})

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}
