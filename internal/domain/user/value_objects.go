package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEmail            = errors.New("invalid email format")
	ErrPasswordTooWeak         = errors.New("password must be at least 8 characters long")
	ErrInvalidName             = errors.New("name must be between 2 and 100 characters")
	ErrInvalidVerificationCode = errors.New("verification code must be 6 digits")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	codeRegex  = regexp.MustCompile(`^[0-9]{6}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type VerificationCode struct {
	value string
}

func NewVerificationCode(s string) (VerificationCode, error) {
	s = strings.TrimSpace(s)
	if !codeRegex.MatchString(s) {
		return VerificationCode{}, ErrInvalidVerificationCode
	}
	return VerificationCode{value: s}, nil
}

func (c VerificationCode) Value() string {
	return c.value
}

func validateName(s string) (string, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < 2 || n > 100 {
		return "", ErrInvalidName
	}
	return s, nil
}
