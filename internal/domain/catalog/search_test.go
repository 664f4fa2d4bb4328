//go:build unit

package catalog_test

import (
	"testing"

	"storefront-checkout/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var products = []catalog.Product{
	{ID: "p1", Name: "Trail Running Shoe", Brand: "Northpeak", Category: "Footwear", Description: "Lightweight shoe for rocky trails"},
	{ID: "p2", Name: "Road Shoe", Brand: "Swift", Category: "Footwear", Description: "Cushioned daily trainer"},
	{ID: "p3", Name: "Rain Jacket", Brand: "Northpeak", Category: "Outerwear", Description: "Packable shell for trail days"},
	{ID: "p4", Name: "Wool Socks", Brand: "Knit & Co", Category: "Accessories", Description: "Warm socks"},
}

func ids(matches []catalog.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Product.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	t.Run("name hits outrank description hits", func(t *testing.T) {
		got := catalog.Search(products, "trail", 10)
		assert.Equal(t, []string{"p1", "p3"}, ids(got))
		assert.Equal(t, catalog.WeightName+catalog.WeightNamePrefix+catalog.WeightDescription, got[0].Score)
		assert.Equal(t, catalog.WeightDescription, got[1].Score)
	})

	t.Run("brand match", func(t *testing.T) {
		got := catalog.Search(products, "northpeak", 10)
		assert.Equal(t, []string{"p3", "p1"}, ids(got), "equal scores sorted by name")
	})

	t.Run("multi token accumulates", func(t *testing.T) {
		got := catalog.Search(products, "shoe footwear", 10)
		require.Len(t, got, 2)
		assert.Equal(t, []string{"p1", "p2"}, ids(got), "description hit breaks the tie")
	})

	t.Run("exact name bonus", func(t *testing.T) {
		got := catalog.Search(products, "Road Shoe", 10)
		require.NotEmpty(t, got)
		assert.Equal(t, "p2", got[0].Product.ID)
	})

	t.Run("limit", func(t *testing.T) {
		got := catalog.Search(products, "shoe", 1)
		assert.Len(t, got, 1)
	})

	t.Run("blank query", func(t *testing.T) {
		assert.Empty(t, catalog.Search(products, "  ", 10))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, catalog.Search(products, "kayak", 10))
	})
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, catalog.DefaultLimit, catalog.NormalizeLimit(0))
	assert.Equal(t, catalog.DefaultLimit, catalog.NormalizeLimit(-3))
	assert.Equal(t, 7, catalog.NormalizeLimit(7))
	assert.Equal(t, catalog.MaxLimit, catalog.NormalizeLimit(1000))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"knit", "co"}, catalog.Tokenize("Knit & Co"))
	assert.Empty(t, catalog.Tokenize(" - "))
}
