package checkout

import (
	"errors"
	"strings"

	"storefront-checkout/internal/domain/card"
)

var (
	ErrStepInvalid         = errors.New("current step is incomplete")
	ErrCardInvalid         = errors.New("card details are incomplete")
	ErrPaymentUnavailable  = errors.New("payment is unavailable for this reservation")
	ErrAddressRequired     = errors.New("address selection is required")
	ErrUnknownShipping     = errors.New("unknown shipping method")
	errMissingConfirmation = errors.New("confirm handler is required")
)

// Flow is the three step checkout wizard. Forward moves are gated by the
// current step; a rejected move leaves the flow untouched.
type Flow struct {
	step       Step
	addressID  string
	shippingID string
	card       card.Card
}

func NewFlow() *Flow {
	return &Flow{step: StepAddress}
}

func (f *Flow) SelectAddress(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrAddressRequired
	}
	f.addressID = id
	return nil
}

func (f *Flow) SelectShipping(id string) error {
	if _, ok := FindShippingMethod(id); !ok {
		return ErrUnknownShipping
	}
	f.shippingID = id
	return nil
}

func (f *Flow) SetCard(c card.Card) {
	f.card = c
}

// StepValid reports whether the current step's own input is complete.
func (f *Flow) StepValid() bool {
	switch f.step {
	case StepAddress:
		return f.addressID != ""
	case StepShipping:
		return f.shippingID != ""
	case StepPayment:
		return f.card.Valid()
	default:
		return false
	}
}

// Next advances one step. On the payment step it calls handleConfirm
// instead of advancing, and only when canPay holds.
func (f *Flow) Next(canPay bool, handleConfirm func() error) (Outcome, error) {
	if f.step != StepPayment {
		if !f.StepValid() {
			return "", ErrStepInvalid
		}
		f.step++
		return OutcomeAdvanced, nil
	}

	if !f.StepValid() {
		return "", ErrCardInvalid
	}
	if !canPay {
		return "", ErrPaymentUnavailable
	}
	if handleConfirm == nil {
		return "", errMissingConfirmation
	}
	if err := handleConfirm(); err != nil {
		return "", err
	}
	return OutcomeConfirmed, nil
}

func (f *Flow) Back() {
	if f.step > StepAddress {
		f.step--
	}
}

// Reset returns to the first step and drops every selection.
func (f *Flow) Reset() {
	*f = Flow{step: StepAddress}
}

func (f *Flow) Step() Step         { return f.step }
func (f *Flow) AddressID() string  { return f.addressID }
func (f *Flow) ShippingID() string { return f.shippingID }
func (f *Flow) Card() card.Card    { return f.card }
