package response

import (
	"storefront-checkout/internal/usecase/queries"
)

type CardFeedbackResponse struct {
	Number         string `json:"number"`
	Expiry         string `json:"expiry"`
	BrandID        string `json:"brandId,omitempty"`
	BrandName      string `json:"brandName,omitempty"`
	MaxDigits      int    `json:"maxDigits"`
	CVVLength      int    `json:"cvvLength"`
	NumberComplete bool   `json:"numberComplete"`
	NameComplete   bool   `json:"nameComplete"`
	ExpiryComplete bool   `json:"expiryComplete"`
	CVVComplete    bool   `json:"cvvComplete"`
	Valid          bool   `json:"valid"`
	NextField      string `json:"nextField,omitempty"`
}

func FromCardFeedback(fb queries.CardFeedback) CardFeedbackResponse {
	return CardFeedbackResponse{
		Number:         fb.Number,
		Expiry:         fb.Expiry,
		BrandID:        fb.BrandID,
		BrandName:      fb.BrandName,
		MaxDigits:      fb.MaxDigits,
		CVVLength:      fb.CVVLength,
		NumberComplete: fb.NumberComplete,
		NameComplete:   fb.NameComplete,
		ExpiryComplete: fb.ExpiryComplete,
		CVVComplete:    fb.CVVComplete,
		Valid:          fb.Valid,
		NextField:      string(fb.NextField),
	}
}
