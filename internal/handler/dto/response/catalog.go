package response

import (
	"storefront-checkout/internal/usecase/queries"
)

type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
	InStock     bool   `json:"inStock"`
	Score       int    `json:"score"`
}

type ProductSearchResponse struct {
	Query    string            `json:"query"`
	Products []ProductResponse `json:"products"`
}

func FromProductViews(query string, views []queries.ProductView) ProductSearchResponse {
	products := make([]ProductResponse, len(views))
	for i, v := range views {
		products[i] = ProductResponse(v)
	}
	return ProductSearchResponse{Query: query, Products: products}
}
