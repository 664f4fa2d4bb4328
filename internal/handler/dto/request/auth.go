package request

import (
	"storefront-checkout/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r LoginRequest) ToCommand() commands.LoginRequest {
	return commands.LoginRequest{Email: r.Email, Password: r.Password}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r RegisterRequest) ToCommand() commands.RegisterRequest {
	return commands.RegisterRequest{Name: r.Name, Email: r.Email, Password: r.Password}
}

type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

func (r VerifyRequest) ToCommand() commands.VerifyRequest {
	return commands.VerifyRequest{Email: r.Email, Code: r.Code}
}
