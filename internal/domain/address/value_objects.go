package address

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrRecipientRequired = errors.New("recipient is required")
	ErrLineRequired      = errors.New("address line is required")
	ErrCityRequired      = errors.New("city is required")
	ErrInvalidPostalCode = errors.New("invalid postal code format")
	ErrInvalidCountry    = errors.New("country must be a two-letter ISO code")
	ErrInvalidPhone      = errors.New("invalid phone number format")
	ErrFieldTooLong      = errors.New("address field exceeds 200 characters")
)

var (
	postalCodeRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9 \-]{1,9}$`)
	countryRegex    = regexp.MustCompile(`^[A-Z]{2}$`)
	phoneRegex      = regexp.MustCompile(`^\+?[0-9 \-()]{6,20}$`)
)

const maxFieldLength = 200

type PostalCode string

func NewPostalCode(s string) (PostalCode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !postalCodeRegex.MatchString(s) {
		return "", ErrInvalidPostalCode
	}
	return PostalCode(s), nil
}

func (p PostalCode) String() string {
	return string(p)
}

type Country string

func NewCountry(s string) (Country, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !countryRegex.MatchString(s) {
		return "", ErrInvalidCountry
	}
	return Country(s), nil
}

func (c Country) String() string {
	return string(c)
}

// Phone is optional; an empty value is accepted.
type Phone string

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if !phoneRegex.MatchString(s) {
		return "", ErrInvalidPhone
	}
	return Phone(s), nil
}

func (p Phone) String() string {
	return string(p)
}

func requiredText(s string, errEmpty error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmpty
	}
	if utf8.RuneCountInString(s) > maxFieldLength {
		return "", ErrFieldTooLong
	}
	return s, nil
}

func optionalText(s string) (string, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxFieldLength {
		return "", ErrFieldTooLong
	}
	return s, nil
}
