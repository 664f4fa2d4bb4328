package request

// Limits are pointers so an explicit 0 fails min=1 instead of passing as unset.
type SearchProductsQuery struct {
	Q     string `form:"q" binding:"max=200"`
	Limit *int   `form:"limit" binding:"omitempty,min=1,max=100"`
}

type HistoryQuery struct {
	Limit *int32 `form:"limit" binding:"omitempty,min=1,max=200"`
}
