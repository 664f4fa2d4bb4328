//go:build unit

package builder

import (
	"storefront-checkout/internal/domain/user"
	reqdto "storefront-checkout/internal/handler/dto/request"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Password string
	Role     string
	Verified bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "shopper@example.com",
		Name:     "Jane Shopper",
		Password: "password123",
		Role:     "customer",
		Verified: true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.ID, email, u.Name, role, u.Verified), nil
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: u.Password}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{Name: u.Name, Email: u.Email, Password: u.Password}
}
