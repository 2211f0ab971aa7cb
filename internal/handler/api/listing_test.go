//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"closeout-market/internal/domain/listing"
	"closeout-market/internal/domain/user"
	"closeout-market/internal/handler/api"
	resdto "closeout-market/internal/handler/dto/response"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/commands"
	"closeout-market/internal/usecase/queries"
	"closeout-market/tests/common/builder"
	"closeout-market/tests/common/httptest"
	"closeout-market/tests/common/testutil"
	commandsmock "closeout-market/tests/mock/commands"
	queriesmock "closeout-market/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockListingCommands
	mockQueries  *queriesmock.MockListingQueries
	callers      callers
}

func (s *ListingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockListingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockListingQueries(s.mockCtrl)
	handler := api.NewListingHandler(s.mockCommands, s.mockQueries)

	c, auth := newCallers(s.mockCtrl)
	s.callers = c
	g := s.router.Group("/api/listings", auth.OptionalAuth())
	g.GET("", handler.InViewport)
	g.GET("/:id", handler.Get)
	g.POST("", auth.RequireRoleAtLeast(user.RoleSeller), handler.Create)
}

func (s *ListingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}

type testCaseListing struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestInViewport
// ================================================================================

func (s *ListingHandlerTestSuite) TestInViewport() {
	view := builder.NewListingBuilder().BuildDecoratedView(builder.NewListingBuilder().Now)

	s.Run("success: anonymous callers see listings in the box", func() {
		vp, err := listing.NewViewport(37.5, 126.9, 37.6, 127.1)
		s.Require().NoError(err)
		s.mockQueries.EXPECT().InViewport(gomock.Any(), vp, 20).Return([]*queries.ListingView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/listings?minLat=37.5&minLng=126.9&maxLat=37.6&maxLng=127.1&limit=20", nil, "")

		var body resdto.ListResponse[queries.ListingView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(view.ID, body.Items[0].ID)
		s.Equal(50, body.Items[0].DiscountPercent)
	})

	s.Run("success: empty box returns an empty list", func() {
		s.mockQueries.EXPECT().InViewport(gomock.Any(), gomock.Any(), 0).Return([]*queries.ListingView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/listings?minLat=0&minLng=0&maxLat=0&maxLng=0", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]any{}, body["items"])
	})

	invalid := []struct {
		name  string
		query string
	}{
		{name: "missing bound", query: "minLat=37.5&minLng=126.9&maxLat=37.6"},
		{name: "not a number", query: "minLat=north&minLng=126.9&maxLat=37.6&maxLng=127.1"},
		{name: "inverted box", query: "minLat=37.6&minLng=126.9&maxLat=37.5&maxLng=127.1"},
		{name: "latitude out of range", query: "minLat=-91&minLng=126.9&maxLat=37.5&maxLng=127.1"},
		{name: "zero limit", query: "minLat=37.5&minLng=126.9&maxLat=37.6&maxLng=127.1&limit=0"},
	}
	for _, tc := range invalid {
		s.Run("error: 400 for "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings?"+tc.query, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}

	s.Run("error: 503 when the read store is down", func() {
		s.mockQueries.EXPECT().InViewport(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("pool exhausted"), errs.ErrUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/listings?minLat=37.5&minLng=126.9&maxLat=37.6&maxLng=127.1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ListingHandlerTestSuite) TestGet() {
	view := builder.NewListingBuilder().BuildView()

	s.Run("success: returns the listing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/"+view.ID.String(), nil, "")

		var body queries.ListingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
	})

	s.Run("error: 404 for an expired or missing listing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/listings/123", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid listing id")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ListingHandlerTestSuite) TestCreate() {
	url := "/api/listings"
	lb := builder.NewListingBuilder()
	reqBody := lb.BuildCreateRequestDTO()
	createdID := uuid.New()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.callers.seller, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ user.Principal, in commands.CreateListingInput) (uuid.UUID, error) {
				s.Equal(lb.BuildInput(), in)
				return createdID, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, sellerToken)

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(createdID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/listings/" + createdID.String()})
	})

	validation := []testCaseListing{
		{name: "zero stock is allowed", mutate: testutil.Field("stock", 0), expectCode: http.StatusCreated},
		{name: "missing field: name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: stock", mutate: testutil.Field("stock", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: expires_at", mutate: testutil.Field("expires_at", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: lat", mutate: testutil.Field("lat", nil), expectCode: http.StatusBadRequest},
		{name: "negative stock", mutate: testutil.Field("stock", -1), expectCode: http.StatusBadRequest},
		{name: "negative price", mutate: testutil.Field("discount_price", -100), expectCode: http.StatusBadRequest},
		{name: "image_url is not a URL", mutate: testutil.Field("image_url", "croissant.jpg"), expectCode: http.StatusBadRequest},
	}

	for _, tc := range validation {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusCreated {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(createdID, nil)
			}
			requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, sellerToken)

			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("error: 401 for anonymous callers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 403 for buyers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, buyerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 403 when the seller has no store", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrStoreRequired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, sellerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: 400 when the domain rejects the listing", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errs.New("discount price exceeds original price"), errs.ErrInvalidInput))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, sellerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "discount price exceeds original price")
	})
}
