//go:build unit

package messaging_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/infra"
	"closeout-market/internal/infra/realtime"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/messaging"
	"closeout-market/internal/usecase/queries"
	"closeout-market/tests/common/builder"
	queriesmock "closeout-market/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const waitFor = 2 * time.Second

type BusTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	channels  *queriesmock.MockChannelReadStore
	history   *queriesmock.MockMessageReadStore
	transport *realtime.LocalTransport
	bus       *messaging.Bus
	cb        *builder.ChannelBuilder
	buyer     user.Principal
}

func TestBusTestSuite(t *testing.T) {
	suite.Run(t, new(BusTestSuite))
}

func (s *BusTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.channels = queriesmock.NewMockChannelReadStore(s.ctrl)
	s.history = queriesmock.NewMockMessageReadStore(s.ctrl)
	s.transport = realtime.NewLocalTransport(16)
	s.bus = messaging.NewBus(nil, s.channels, s.history, s.transport)
	s.cb = builder.NewChannelBuilder()
	s.buyer = user.NewPrincipal(s.cb.BuyerID, user.RoleBuyer)
}

func (s *BusTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BusTestSuite) expectChannel() {
	s.channels.EXPECT().FindByID(gomock.Any(), s.cb.ID).Return(s.cb.BuildView(), nil)
}

func (s *BusTestSuite) pushLive(m *queries.MessageView) {
	payload, err := json.Marshal(m)
	s.Require().NoError(err)
	s.Require().NoError(s.transport.Publish(context.Background(), s.cb.ID, payload))
}

func (s *BusTestSuite) receive(sub *messaging.Subscription) *queries.MessageView {
	select {
	case m, ok := <-sub.C():
		s.Require().True(ok, "subscription closed early: %v", sub.Err())
		return m
	case <-time.After(waitFor):
		s.FailNow("timed out waiting for message")
		return nil
	}
}

func (s *BusTestSuite) receiveSeqs(sub *messaging.Subscription, n int) []int64 {
	seqs := make([]int64, 0, n)
	for range n {
		seqs = append(seqs, s.receive(sub).Seq)
	}
	return seqs
}

func (s *BusTestSuite) TestSubscribe_BackfillThenLive() {
	s.expectChannel()
	s.history.EXPECT().FindAfter(gomock.Any(), s.cb.ID, int64(0), gomock.Any()).Return(s.cb.BuildMessages(1, 3), nil)

	sub, err := s.bus.Subscribe(context.Background(), s.buyer, s.cb.ID, 0)
	s.Require().NoError(err)
	defer sub.Cancel()

	s.Equal([]int64{1, 2, 3}, s.receiveSeqs(sub, 3))

	s.pushLive(s.cb.BuildMessage(2))
	s.pushLive(s.cb.BuildMessage(4))
	s.pushLive(s.cb.BuildMessage(4))
	s.pushLive(s.cb.BuildMessage(5))

	s.Equal([]int64{4, 5}, s.receiveSeqs(sub, 2))
}

func (s *BusTestSuite) TestSubscribe_ResumesAfterSeq() {
	s.expectChannel()
	s.history.EXPECT().FindAfter(gomock.Any(), s.cb.ID, int64(7), gomock.Any()).Return(s.cb.BuildMessages(8, 9), nil)

	sub, err := s.bus.Subscribe(context.Background(), s.buyer, s.cb.ID, 7)
	s.Require().NoError(err)
	defer sub.Cancel()

	s.Equal([]int64{8, 9}, s.receiveSeqs(sub, 2))
}

func (s *BusTestSuite) TestSubscribe_LiveGapIsFilledFromHistory() {
	s.expectChannel()
	gomock.InOrder(
		s.history.EXPECT().FindAfter(gomock.Any(), s.cb.ID, int64(0), gomock.Any()).Return(s.cb.BuildMessages(1, 2), nil),
		s.history.EXPECT().FindAfter(gomock.Any(), s.cb.ID, int64(2), gomock.Any()).Return(s.cb.BuildMessages(3, 5), nil),
	)

	sub, err := s.bus.Subscribe(context.Background(), s.buyer, s.cb.ID, 0)
	s.Require().NoError(err)
	defer sub.Cancel()

	s.Equal([]int64{1, 2}, s.receiveSeqs(sub, 2))

	// 3 and 4 never arrive live.
	s.pushLive(s.cb.BuildMessage(5))
	s.pushLive(s.cb.BuildMessage(6))

	s.Equal([]int64{3, 4, 5, 6}, s.receiveSeqs(sub, 4))
}

func (s *BusTestSuite) TestSubscribe_IgnoresForeignAndUndecodablePayloads() {
	s.expectChannel()
	s.history.EXPECT().FindAfter(gomock.Any(), s.cb.ID, int64(0), gomock.Any()).Return(nil, nil)

	sub, err := s.bus.Subscribe(context.Background(), s.buyer, s.cb.ID, 0)
	s.Require().NoError(err)
	defer sub.Cancel()

	s.Require().NoError(s.transport.Publish(context.Background(), s.cb.ID, []byte("not json")))
	foreign := s.cb.BuildMessage(1)
	foreign.ChannelID = uuid.New()
	s.pushLive(foreign)
	s.pushLive(s.cb.BuildMessage(1))

	s.Equal(int64(1), s.receive(sub).Seq)
}

func (s *BusTestSuite) TestCancel_ReleasesTransport() {
	s.expectChannel()
	s.history.EXPECT().FindAfter(gomock.Any(), s.cb.ID, int64(0), gomock.Any()).Return(nil, nil)

	sub, err := s.bus.Subscribe(context.Background(), s.buyer, s.cb.ID, 0)
	s.Require().NoError(err)
	s.Equal(1, s.transport.Subscribers(s.cb.ID))

	sub.Cancel()
	sub.Cancel()

	s.Equal(0, s.transport.Subscribers(s.cb.ID))
	_, open := <-sub.C()
	s.False(open)
	s.NoError(sub.Err())
}

func (s *BusTestSuite) TestCallerContextEndsSubscription() {
	s.expectChannel()
	s.history.EXPECT().FindAfter(gomock.Any(), s.cb.ID, int64(0), gomock.Any()).Return(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := s.bus.Subscribe(ctx, s.buyer, s.cb.ID, 0)
	s.Require().NoError(err)

	cancel()

	select {
	case <-sub.Done():
	case <-time.After(waitFor):
		s.FailNow("subscription did not stop")
	}
	s.Equal(0, s.transport.Subscribers(s.cb.ID))
	s.NoError(sub.Err())
}

func (s *BusTestSuite) TestHistoryFailureEndsSubscription() {
	s.expectChannel()
	s.history.EXPECT().FindAfter(gomock.Any(), s.cb.ID, int64(0), gomock.Any()).
		Return(nil, infra.WrapRepoErr("pool closed", nil, infra.KindUnavailable))

	sub, err := s.bus.Subscribe(context.Background(), s.buyer, s.cb.ID, 0)
	s.Require().NoError(err)

	select {
	case <-sub.Done():
	case <-time.After(waitFor):
		s.FailNow("subscription did not stop")
	}
	s.True(errs.Is(sub.Err(), errs.ErrUnavailable))
	s.Equal(0, s.transport.Subscribers(s.cb.ID))
}

func TestBus_Subscribe_Rejections(t *testing.T) {
	ctx := context.Background()
	cb := builder.NewChannelBuilder()

	testCases := []struct {
		name        string
		principal   user.Principal
		afterSeq    int64
		setupMock   func(*queriesmock.MockChannelReadStore)
		expectedErr error
	}{
		{
			name:        "error: anonymous caller",
			principal:   user.Anonymous(),
			setupMock:   func(*queriesmock.MockChannelReadStore) {},
			expectedErr: errs.ErrUnauthenticated,
		},
		{
			name:        "error: negative afterSeq",
			principal:   user.NewPrincipal(cb.BuyerID, user.RoleBuyer),
			afterSeq:    -1,
			setupMock:   func(*queriesmock.MockChannelReadStore) {},
			expectedErr: errs.ErrInvalidInput,
		},
		{
			name:      "error: outsider",
			principal: user.NewPrincipal(uuid.New(), user.RoleBuyer),
			setupMock: func(m *queriesmock.MockChannelReadStore) {
				m.EXPECT().FindByID(ctx, cb.ID).Return(cb.BuildView(), nil)
			},
			expectedErr: errs.ErrForbidden,
		},
		{
			name:      "error: channel missing",
			principal: user.NewPrincipal(cb.BuyerID, user.RoleBuyer),
			setupMock: func(m *queriesmock.MockChannelReadStore) {
				m.EXPECT().FindByID(ctx, cb.ID).Return(nil, infra.WrapRepoErr("channel not found", nil, infra.KindNotFound))
			},
			expectedErr: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			channels := queriesmock.NewMockChannelReadStore(ctrl)
			tc.setupMock(channels)
			transport := realtime.NewLocalTransport(4)
			bus := messaging.NewBus(nil, channels, queriesmock.NewMockMessageReadStore(ctrl), transport)

			sub, err := bus.Subscribe(ctx, tc.principal, cb.ID, tc.afterSeq)

			require.Error(t, err)
			assert.Nil(t, sub)
			assert.True(t, errs.Is(err, tc.expectedErr), "expected %v, got %v", tc.expectedErr, err)
			assert.Equal(t, 0, transport.Subscribers(cb.ID))
		})
	}
}
