package card

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

const minNameLength = 3

type Field string

const (
	FieldNumber Field = "number"
	FieldName   Field = "name"
	FieldExpiry Field = "expiry"
	FieldCVV    Field = "cvv"
)

var fieldOrder = []Field{FieldNumber, FieldName, FieldExpiry, FieldCVV}

func (f Field) IsValid() bool {
	switch f {
	case FieldNumber, FieldName, FieldExpiry, FieldCVV:
		return true
	default:
		return false
	}
}

// Card is the payment form as typed by the shopper, already normalized.
// It never leaves the process unmasked; no charge is made from it.
type Card struct {
	number string
	name   string
	expiry string
	cvv    string
	brand  Brand
}

// NewCard normalizes raw form input. It never fails: incomplete input is a
// normal state of a form being typed.
func NewCard(number, name, expiry, cvv string) Card {
	brand, _ := DetectBrand(number)
	return Card{
		number: FormatNumber(number),
		name:   name,
		expiry: FormatExpiry(expiry),
		cvv:    formatCVV(cvv, brand),
		brand:  brand,
	}
}

func (c Card) Number() string { return c.number }
func (c Card) Name() string   { return c.name }
func (c Card) Expiry() string { return c.expiry }
func (c Card) CVV() string    { return c.cvv }
func (c Card) Brand() Brand   { return c.brand }

func (c Card) IsEmpty() bool {
	return c.number == "" && c.name == "" && c.expiry == "" && c.cvv == ""
}

func (c Card) NumberComplete() bool {
	digits := Digits(c.number)
	if c.brand.IsZero() {
		return len(digits) >= UnknownMaxDigits
	}
	return len(digits) >= c.brand.Length
}

func (c Card) NameComplete() bool {
	return utf8.RuneCountInString(strings.TrimSpace(c.name)) >= minNameLength
}

func (c Card) ExpiryComplete() bool {
	return expiryRegex.MatchString(c.expiry)
}

func (c Card) CVVComplete() bool {
	return len(Digits(c.cvv)) == cvvLength(c.brand)
}

func (c Card) Complete(f Field) bool {
	switch f {
	case FieldNumber:
		return c.NumberComplete()
	case FieldName:
		return c.NameComplete()
	case FieldExpiry:
		return c.ExpiryComplete()
	case FieldCVV:
		return c.CVVComplete()
	default:
		return false
	}
}

// Valid is the conjunction of the four field-completion predicates.
func (c Card) Valid() bool {
	for _, f := range fieldOrder {
		if !c.Complete(f) {
			return false
		}
	}
	return true
}

// Advance reports which field focus should move to after f was edited.
// CVV is the last field and never advances.
func (c Card) Advance(f Field) (Field, bool) {
	if f == FieldCVV || !c.Complete(f) {
		return "", false
	}
	for i, candidate := range fieldOrder {
		if candidate == f && i+1 < len(fieldOrder) {
			return fieldOrder[i+1], true
		}
	}
	return "", false
}

// Masked renders the number with everything but the last four digits hidden.
func (c Card) Masked() string {
	digits := Digits(c.number)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("•", len(digits)-4) + digits[len(digits)-4:]
}

func (c Card) Last4() string {
	digits := Digits(c.number)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}

// Digits strips every non-digit rune.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatNumber groups the digits of input by the detected brand's mask and
// truncates to the brand's length, or to 19 digits in groups of four when
// no brand matches. Formatting is idempotent.
func FormatNumber(input string) string {
	digits := Digits(input)
	brand, ok := DetectBrand(digits)

	limit := UnknownMaxDigits
	var mask []int
	if ok {
		limit = brand.Length
		mask = brand.Mask
	}
	if len(digits) > limit {
		digits = digits[:limit]
	}
	return group(digits, mask)
}

func group(digits string, mask []int) string {
	if digits == "" {
		return ""
	}
	parts := make([]string, 0, 5)
	rest := digits
	for i := 0; rest != ""; i++ {
		width := UnknownGroup
		if i < len(mask) {
			width = mask[i]
		}
		if width > len(rest) {
			width = len(rest)
		}
		parts = append(parts, rest[:width])
		rest = rest[width:]
	}
	return strings.Join(parts, " ")
}

// FormatExpiry turns typed digits into MM/YY, inserting the slash once the
// year starts.
func FormatExpiry(input string) string {
	digits := Digits(input)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

func formatCVV(input string, brand Brand) string {
	digits := Digits(input)
	limit := MaxCVVLength
	if !brand.IsZero() {
		limit = brand.CVVLength
	}
	if len(digits) > limit {
		digits = digits[:limit]
	}
	return digits
}

func cvvLength(b Brand) int {
	if b.IsZero() {
		return DefaultCVVLength
	}
	return b.CVVLength
}
