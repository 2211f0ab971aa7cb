//go:build unit

package api_test

import (
	"closeout-market/internal/domain/user"
	"closeout-market/internal/handler/middleware"
	"closeout-market/internal/pkg/errs"
	sharedmock "closeout-market/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

const (
	buyerToken  = "buyer-token"
	sellerToken = "seller-token"
	adminToken  = "admin-token"
)

type callers struct {
	buyer  user.Principal
	seller user.Principal
	admin  user.Principal
}

// newCallers wires the real auth middleware to a validator that knows three fixed tokens.
func newCallers(ctrl *gomock.Controller) (callers, *middleware.AuthMiddleware) {
	c := callers{
		buyer:  user.NewPrincipal(uuid.New(), user.RoleBuyer),
		seller: user.NewPrincipal(uuid.New(), user.RoleSeller),
		admin:  user.NewPrincipal(uuid.New(), user.RoleAdmin),
	}
	byToken := map[string]user.Principal{
		buyerToken:  c.buyer,
		sellerToken: c.seller,
		adminToken:  c.admin,
	}

	validator := sharedmock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(token string) (user.Principal, error) {
		if p, ok := byToken[token]; ok {
			return p, nil
		}
		return user.Anonymous(), errs.ErrUnauthenticated
	}).AnyTimes()

	return c, middleware.NewAuthMiddleware(validator)
}
