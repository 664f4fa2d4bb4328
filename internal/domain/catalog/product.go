package catalog

// Product is a catalog entry as listed by the storefront API.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Category    string `json:"category"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}
