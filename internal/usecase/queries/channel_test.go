//go:build unit

package queries_test

import (
	"context"
	"testing"

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

func TestChannelQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	cb := builder.NewChannelBuilder()

	testCases := []struct {
		name        string
		principal   user.Principal
		found       bool
		expectedErr error
	}{
		{name: "success: buyer", principal: user.NewPrincipal(cb.BuyerID, user.RoleBuyer), found: true},
		{name: "success: seller", principal: user.NewPrincipal(cb.SellerID, user.RoleSeller), found: true},
		{name: "error: outsider", principal: user.NewPrincipal(uuid.New(), user.RoleBuyer), found: true, expectedErr: errs.ErrForbidden},
		{name: "error: admin is not a participant", principal: user.NewPrincipal(uuid.New(), user.RoleAdmin), found: true, expectedErr: errs.ErrForbidden},
		{name: "error: channel missing", principal: user.NewPrincipal(cb.BuyerID, user.RoleBuyer), expectedErr: errs.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := queriesmock.NewMockChannelReadStore(ctrl)
			if tc.found {
				repo.EXPECT().FindByID(ctx, cb.ID).Return(cb.BuildView(), nil)
			} else {
				repo.EXPECT().FindByID(ctx, cb.ID).Return(nil, infra.WrapRepoErr("channel not found", nil, infra.KindNotFound))
			}

			view, err := queries.NewChannelQueries(repo).GetByID(ctx, tc.principal, cb.ID)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cb.ID, view.ID)
		})
	}
}

func TestChannelQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := user.NewPrincipal(uuid.New(), user.RoleBuyer)
	repo := queriesmock.NewMockChannelReadStore(ctrl)
	repo.EXPECT().FindByParticipant(ctx, p.ID(), int32(queries.MaxListLimit)).Return(nil, nil)

	items, err := queries.NewChannelQueries(repo).ListMine(ctx, p, 10_000)

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, err = queries.NewChannelQueries(repo).ListMine(ctx, user.Anonymous(), 10)
	assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
}
