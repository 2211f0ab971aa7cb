package usecase

import (
	"closeout-market/internal/domain/user"
	"closeout-market/internal/pkg/jwt"
	"closeout-market/internal/usecase/shared"
)

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) shared.TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Anonymous(), err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Anonymous(), err
	}

	return user.NewPrincipal(claims.UserID, role), nil
}
