package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// User is the authenticated shopper as described by the auth service.
type User struct {
	id       uuid.UUID
	email    Email
	name     string
	role     Role
	verified bool
}

func NewUser(id uuid.UUID, email Email, name string, role Role, verified bool) *User {
	return &User{
		id:       id,
		email:    email,
		name:     name,
		role:     role,
		verified: verified,
	}
}

func (u *User) ID() uuid.UUID    { return u.id }
func (u *User) Email() Email     { return u.email }
func (u *User) Name() string     { return u.name }
func (u *User) Role() Role       { return u.role }
func (u *User) IsVerified() bool { return u.verified }
