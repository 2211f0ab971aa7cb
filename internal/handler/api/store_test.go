//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"closeout-market/internal/domain/user"
	"closeout-market/internal/handler/api"
	resdto "closeout-market/internal/handler/dto/response"
	"closeout-market/internal/pkg/errs"
	"closeout-market/internal/usecase/commands"
	"closeout-market/tests/common/builder"
	"closeout-market/tests/common/httptest"
	"closeout-market/tests/common/testutil"
	commandsmock "closeout-market/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StoreHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockStoreCommands
	callers      callers
}

func (s *StoreHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockStoreCommands(s.mockCtrl)
	handler := api.NewStoreHandler(s.mockCommands)

	c, auth := newCallers(s.mockCtrl)
	s.callers = c
	g := s.router.Group("/api/stores", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleSeller))
	g.POST("", handler.Register)
	g.POST("/:id/verify", handler.Verify)
}

func (s *StoreHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStoreHandlerSuite(t *testing.T) {
	suite.Run(t, new(StoreHandlerTestSuite))
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *StoreHandlerTestSuite) TestRegister() {
	url := "/api/stores"
	sb := builder.NewStoreBuilder()
	reqBody := sb.BuildRegisterRequestDTO()

	s.Run("success: returns 201 with the store id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Register(gomock.Any(), s.callers.seller, sb.BuildRegisterInput()).Return(id, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, sellerToken)

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id, body.ID)
	})

	for _, field := range []string{"name", "address", "biz_number"} {
		s.Run("error: 400 when "+field+" is missing", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
				testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil)), sellerToken)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 409 when the seller already has a store", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, errs.Wrap(commands.ErrStoreAlreadyExists, "register"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, sellerToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: 403 for buyers", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, buyerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestVerify
// ================================================================================

func (s *StoreHandlerTestSuite) TestVerify() {
	sb := builder.NewStoreBuilder()
	url := "/api/stores/" + sb.ID.String() + "/verify"
	reqBody := sb.BuildVerifyRequestDTO()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), s.callers.seller, sb.ID, sb.BuildVerifyInput()).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, sellerToken)

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "registration rejected", err: commands.ErrVerificationFailed, expectCode: http.StatusUnprocessableEntity, expectMsg: "could not be verified"},
		{name: "verifier down", err: errs.Mark(errs.New("verifier timeout"), errs.ErrUnavailable), expectCode: http.StatusServiceUnavailable},
		{name: "not the owner", err: errs.ErrForbidden, expectCode: http.StatusForbidden},
		{name: "unknown store", err: errs.ErrNotFound, expectCode: http.StatusNotFound},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Verify(gomock.Any(), gomock.Any(), sb.ID, gomock.Any()).Return(tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, sellerToken)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: 400 for a malformed store id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/stores/xyz/verify", reqBody, sellerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid store id")
	})
}
