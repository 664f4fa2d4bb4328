package storefront

import "time"

type cartItemPayload struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type createCartRequest struct {
	Items []cartItemPayload `json:"items"`
}

type cartReservationResponse struct {
	ID              string     `json:"id"`
	ExpiryTimestamp *time.Time `json:"expiryTimestamp"`
	Status          string     `json:"status"`
}

type confirmCartRequest struct {
	AddressID *string `json:"addressId,omitempty"`
}

type confirmationResponse struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"orderId"`
	Status      string     `json:"status"`
	ConfirmedAt *time.Time `json:"confirmedAt"`
}

type cartLineResponse struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
}

type cartDetailResponse struct {
	ID              string             `json:"id"`
	Status          string             `json:"status"`
	ExpiryTimestamp *time.Time         `json:"expiryTimestamp"`
	Items           []cartLineResponse `json:"items"`
	TotalCents      int64              `json:"totalCents"`
}

type addressPayload struct {
	ID         string `json:"id,omitempty"`
	Recipient  string `json:"recipient"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
	IsDefault  bool   `json:"isDefault"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type userPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
}

type authResponse struct {
	Token     string      `json:"token"`
	ExpiresAt *time.Time  `json:"expiresAt"`
	User      userPayload `json:"user"`
}
