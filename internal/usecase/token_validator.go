package usecase

//go:generate mockgen -source=token_validator.go -destination=../testutil/mock/usecase/token_validator.go -package=usecasemock

import (
	"storefront-checkout/internal/domain/user"
	"storefront-checkout/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator checks storefront access tokens presented to this service.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}

	return claims.UserID, role, nil
}
