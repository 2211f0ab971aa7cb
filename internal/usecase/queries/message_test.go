//go:build unit

package queries_test

import (
	"context"
	"testing"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/queries"
	"closeout-market/tests/common/builder"
	queriesmock "closeout-market/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMessageQueries_History(t *testing.T) {
	ctx := context.Background()
	cb := builder.NewChannelBuilder()

	t.Run("success: returns messages after the given seq", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		channels := queriesmock.NewMockChannelReadStore(ctrl)
		messages := queriesmock.NewMockMessageReadStore(ctrl)
		channels.EXPECT().FindByID(ctx, cb.ID).Return(cb.BuildView(), nil)
		messages.EXPECT().FindAfter(ctx, cb.ID, int64(3), int32(20)).Return(cb.BuildMessages(4, 6), nil)

		got, err := queries.NewMessageQueries(channels, messages).
			History(ctx, user.NewPrincipal(cb.SellerID, user.RoleSeller), cb.ID, 3, 20)

		require.NoError(t, err)
		require.Len(t, got, 3)
		for i, m := range got {
			assert.Equal(t, int64(4+i), m.Seq)
		}
	})

	t.Run("error: outsider cannot read history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		channels := queriesmock.NewMockChannelReadStore(ctrl)
		messages := queriesmock.NewMockMessageReadStore(ctrl)
		channels.EXPECT().FindByID(ctx, cb.ID).Return(cb.BuildView(), nil)

		_, err := queries.NewMessageQueries(channels, messages).
			History(ctx, user.NewPrincipal(uuid.New(), user.RoleBuyer), cb.ID, 0, 20)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: negative afterSeq", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, err := queries.NewMessageQueries(queriesmock.NewMockChannelReadStore(ctrl), queriesmock.NewMockMessageReadStore(ctrl)).
			History(ctx, user.NewPrincipal(cb.BuyerID, user.RoleBuyer), cb.ID, -1, 20)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidInput))
	})
}
