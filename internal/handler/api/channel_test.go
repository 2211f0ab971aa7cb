//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"closeout-market/internal/domain/channel"
	"closeout-market/internal/domain/message"
	"closeout-market/internal/handler/api"
	resdto "closeout-market/internal/handler/dto/response"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/commands"
	"closeout-market/internal/usecase/queries"
	"closeout-market/tests/common/builder"
	"closeout-market/tests/common/httptest"
	commandsmock "closeout-market/tests/mock/commands"
	queriesmock "closeout-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChannelHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockChannels *commandsmock.MockChannelCommands
	mockMessages *commandsmock.MockMessageCommands
	mockChq      *queriesmock.MockChannelQueries
	mockMsgq     *queriesmock.MockMessageQueries
	callers      callers
	cb           *builder.ChannelBuilder
}

func (s *ChannelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockChannels = commandsmock.NewMockChannelCommands(s.mockCtrl)
	s.mockMessages = commandsmock.NewMockMessageCommands(s.mockCtrl)
	s.mockChq = queriesmock.NewMockChannelQueries(s.mockCtrl)
	s.mockMsgq = queriesmock.NewMockMessageQueries(s.mockCtrl)
	handler := api.NewChannelHandler(s.mockChannels, s.mockMessages, s.mockChq, s.mockMsgq)

	c, auth := newCallers(s.mockCtrl)
	s.callers = c
	s.cb = builder.NewChannelBuilder().Between(c.buyer.ID(), c.seller.ID())

	g := s.router.Group("/api/channels", auth.RequireAuth())
	g.POST("", handler.Open)
	g.GET("", handler.ListMine)
	g.GET("/:id", handler.Get)
	g.GET("/:id/messages", handler.History)
	g.POST("/:id/messages", handler.Post)
}

func (s *ChannelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChannelHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChannelHandlerTestSuite))
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *ChannelHandlerTestSuite) TestOpen() {
	url := "/api/channels"
	reqBody := map[string]any{"listing_id": s.cb.ListingID.String()}

	cases := []struct {
		name         string
		result       channel.GetOrCreateResult
		expectCode   int
		expectResult string
	}{
		{name: "success: first contact creates the channel", result: channel.Created(s.cb.BuildDomain()), expectCode: http.StatusCreated, expectResult: "created"},
		{name: "success: repeated contact returns the same channel", result: channel.AlreadyExists(s.cb.BuildDomain()), expectCode: http.StatusOK, expectResult: "already_exists"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockChannels.EXPECT().Open(gomock.Any(), s.callers.buyer, s.cb.ListingID).Return(tc.result, nil)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, buyerToken)

			var body resdto.ChannelResponse
			httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, &body)
			s.Equal(s.cb.ID, body.ID)
			s.Equal(s.callers.seller.ID(), body.SellerID)
			s.Equal(tc.expectResult, body.Result)
		})
	}

	s.Run("error: 403 when contacting your own listing", func() {
		s.mockChannels.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(channel.GetOrCreateResult{}, commands.ErrSellerOwnListing)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, sellerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 when listing_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, buyerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestGet / TestListMine
// ================================================================================

func (s *ChannelHandlerTestSuite) TestGet() {
	s.Run("success: participant reads the channel", func() {
		s.mockChq.EXPECT().GetByID(gomock.Any(), s.callers.seller, s.cb.ID).Return(s.cb.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/channels/"+s.cb.ID.String(), nil, sellerToken)

		var body queries.ChannelView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.cb.BuyerID, body.BuyerID)
	})

	s.Run("error: 403 for outsiders", func() {
		s.mockChq.EXPECT().GetByID(gomock.Any(), s.callers.admin, s.cb.ID).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/channels/"+s.cb.ID.String(), nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})
}

func (s *ChannelHandlerTestSuite) TestListMine() {
	item := &queries.ChannelListItem{ChannelView: *s.cb.BuildView(), ListingName: "Croissant box", StoreName: "Morning Bakery"}
	s.mockChq.EXPECT().ListMine(gomock.Any(), s.callers.buyer, 5).Return([]*queries.ChannelListItem{item}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/channels?limit=5", nil, buyerToken)

	var body resdto.ListResponse[queries.ChannelListItem]
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Items, 1)
	s.Equal("Morning Bakery", body.Items[0].StoreName)
}

// ================================================================================
// TestHistory / TestPost
// ================================================================================

func (s *ChannelHandlerTestSuite) TestHistory() {
	url := "/api/channels/" + s.cb.ID.String() + "/messages"

	s.Run("success: returns messages after the cursor", func() {
		s.mockMsgq.EXPECT().History(gomock.Any(), s.callers.buyer, s.cb.ID, int64(2), 50).Return(s.cb.BuildMessages(3, 4), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?afterSeq=2&limit=50", nil, buyerToken)

		var body resdto.ListResponse[queries.MessageView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 2)
		s.Equal(int64(3), body.Items[0].Seq)
		s.Equal(int64(4), body.Items[1].Seq)
	})

	s.Run("success: afterSeq defaults to zero", func() {
		s.mockMsgq.EXPECT().History(gomock.Any(), gomock.Any(), s.cb.ID, int64(0), 0).Return([]*queries.MessageView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, buyerToken)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 for a negative afterSeq", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?afterSeq=-1", nil, buyerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 404 for an unknown channel", func() {
		missing := uuid.New()
		s.mockMsgq.EXPECT().History(gomock.Any(), gomock.Any(), missing, int64(0), 0).Return(nil, errs.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/channels/"+missing.String()+"/messages", nil, buyerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

func (s *ChannelHandlerTestSuite) TestPost() {
	url := "/api/channels/" + s.cb.ID.String() + "/messages"

	s.Run("success: returns the sequenced message", func() {
		msg := s.cb.BuildMessage(7)
		s.mockMessages.EXPECT().Publish(gomock.Any(), s.callers.buyer, s.cb.ID, "is it still warm?").Return(msg, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"body": "is it still warm?"}, buyerToken)

		var body queries.MessageView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(7), body.Seq)
	})

	s.Run("error: 400 for an empty body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"body": ""}, buyerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when the usecase rejects the body", func() {
		long := strings.Repeat("a", message.MaxBodyLength+1)
		s.mockMessages.EXPECT().Publish(gomock.Any(), gomock.Any(), s.cb.ID, long).
			Return(nil, errs.Mark(errs.New("message body too long"), errs.ErrInvalidInput))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"body": long}, buyerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "too long")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"body": "hi"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}
