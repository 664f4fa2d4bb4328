package card

import "regexp"

// Brand is a static rule set for one card network.
type Brand struct {
	ID        string
	Name      string
	Mask      []int // digit group widths, e.g. Amex 4-6-5
	Length    int   // total digits
	CVVLength int
	pattern   *regexp.Regexp
}

func (b Brand) Matches(digits string) bool {
	return b.pattern != nil && b.pattern.MatchString(digits)
}

func (b Brand) IsZero() bool {
	return b.ID == ""
}

const (
	UnknownMaxDigits = 19
	UnknownGroup     = 4
	DefaultCVVLength = 3
	MaxCVVLength     = 4
)

var (
	Amex = Brand{
		ID:        "amex",
		Name:      "American Express",
		Mask:      []int{4, 6, 5},
		Length:    15,
		CVVLength: 4,
		pattern:   regexp.MustCompile(`^3[47]`),
	}
	Mastercard = Brand{
		ID:        "mastercard",
		Name:      "Mastercard",
		Mask:      []int{4, 4, 4, 4},
		Length:    16,
		CVVLength: 3,
		// 51-55 plus the 2221-2720 range.
		pattern: regexp.MustCompile(`^(5[1-5]|222[1-9]|22[3-9][0-9]|2[3-6][0-9]{2}|27[01][0-9]|2720)`),
	}
	Visa = Brand{
		ID:        "visa",
		Name:      "Visa",
		Mask:      []int{4, 4, 4, 4},
		Length:    16,
		CVVLength: 3,
		pattern:   regexp.MustCompile(`^4`),
	}
)

// brands is matched in order; the first hit wins.
var brands = []Brand{Amex, Mastercard, Visa}

func Brands() []Brand {
	out := make([]Brand, len(brands))
	copy(out, brands)
	return out
}

// DetectBrand matches the leading digits of input against the known brands.
// Non-digit characters are ignored.
func DetectBrand(input string) (Brand, bool) {
	digits := Digits(input)
	if digits == "" {
		return Brand{}, false
	}
	for _, b := range brands {
		if b.Matches(digits) {
			return b, true
		}
	}
	return Brand{}, false
}
