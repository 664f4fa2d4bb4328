package catalog

import (
	"sort"
	"strings"
	"unicode"
)

// Field weights for a query token found in a product field.
const (
	WeightName        = 5
	WeightNamePrefix  = 3
	WeightBrand       = 3
	WeightCategory    = 2
	WeightDescription = 1
	WeightExactName   = 10
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Match struct {
	Product Product
	Score   int
}

// Search ranks products against query. Products that score zero are
// dropped; ties are broken by name so results are stable.
func Search(products []Product, query string, limit int) []Match {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []Match{}
	}
	limit = NormalizeLimit(limit)

	matches := make([]Match, 0, len(products))
	for _, p := range products {
		if s := Score(p, query, tokens); s > 0 {
			matches = append(matches, Match{Product: p, Score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return strings.ToLower(matches[i].Product.Name) < strings.ToLower(matches[j].Product.Name)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func Score(p Product, query string, tokens []string) int {
	name := strings.ToLower(p.Name)
	nameWords := Tokenize(p.Name)
	brand := strings.ToLower(p.Brand)
	category := strings.ToLower(p.Category)
	description := strings.ToLower(p.Description)

	score := 0
	if strings.TrimSpace(strings.ToLower(query)) == strings.TrimSpace(name) {
		score += WeightExactName
	}
	for _, tok := range tokens {
		if strings.Contains(name, tok) {
			score += WeightName
			if hasPrefix(nameWords, tok) {
				score += WeightNamePrefix
			}
		}
		if strings.Contains(brand, tok) {
			score += WeightBrand
		}
		if strings.Contains(category, tok) {
			score += WeightCategory
		}
		if strings.Contains(description, tok) {
			score += WeightDescription
		}
	}
	return score
}

// Tokenize lowercases s and splits it on anything that is not a letter or digit.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func hasPrefix(words []string, tok string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, tok) {
			return true
		}
	}
	return false
}
