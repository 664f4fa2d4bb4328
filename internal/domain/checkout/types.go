package checkout

type Step int

const (
	StepAddress  Step = 1
	StepShipping Step = 2
	StepPayment  Step = 3
)

func (s Step) String() string {
	switch s {
	case StepAddress:
		return "address"
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	default:
		return "unknown"
	}
}

type Outcome string

const (
	OutcomeAdvanced  Outcome = "advanced"
	OutcomeConfirmed Outcome = "confirmed"
)

type ShippingMethod struct {
	ID            string
	Name          string
	PriceCents    int64
	EstimatedDays int
}

var shippingMethods = []ShippingMethod{
	{ID: "standard", Name: "Standard", PriceCents: 0, EstimatedDays: 5},
	{ID: "express", Name: "Express", PriceCents: 1500, EstimatedDays: 1},
}

func ShippingMethods() []ShippingMethod {
	out := make([]ShippingMethod, len(shippingMethods))
	copy(out, shippingMethods)
	return out
}

func FindShippingMethod(id string) (ShippingMethod, bool) {
	for _, m := range shippingMethods {
		if m.ID == id {
			return m, true
		}
	}
	return ShippingMethod{}, false
}
