package address

// Address is a shipping destination owned by the address service. The id is
// empty until the service has stored it.
type Address struct {
	id         string
	recipient  string
	line1      string
	line2      string
	city       string
	region     string
	postalCode PostalCode
	country    Country
	phone      Phone
	isDefault  bool
}

type Input struct {
	Recipient  string
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool
}

func NewAddress(in Input) (*Address, error) {
	recipient, err := requiredText(in.Recipient, ErrRecipientRequired)
	if err != nil {
		return nil, err
	}
	line1, err := requiredText(in.Line1, ErrLineRequired)
	if err != nil {
		return nil, err
	}
	line2, err := optionalText(in.Line2)
	if err != nil {
		return nil, err
	}
	city, err := requiredText(in.City, ErrCityRequired)
	if err != nil {
		return nil, err
	}
	region, err := optionalText(in.Region)
	if err != nil {
		return nil, err
	}
	postal, err := NewPostalCode(in.PostalCode)
	if err != nil {
		return nil, err
	}
	country, err := NewCountry(in.Country)
	if err != nil {
		return nil, err
	}
	phone, err := NewPhone(in.Phone)
	if err != nil {
		return nil, err
	}

	return &Address{
		recipient:  recipient,
		line1:      line1,
		line2:      line2,
		city:       city,
		region:     region,
		postalCode: postal,
		country:    country,
		phone:      phone,
		isDefault:  in.IsDefault,
	}, nil
}

// WithID returns a copy bound to the id assigned by the address service.
func (a Address) WithID(id string) *Address {
	a.id = id
	return &a
}

func (a *Address) ID() string             { return a.id }
func (a *Address) Recipient() string      { return a.recipient }
func (a *Address) Line1() string          { return a.line1 }
func (a *Address) Line2() string          { return a.line2 }
func (a *Address) City() string           { return a.city }
func (a *Address) Region() string         { return a.region }
func (a *Address) PostalCode() PostalCode { return a.postalCode }
func (a *Address) Country() Country       { return a.country }
func (a *Address) Phone() Phone           { return a.phone }
func (a *Address) IsDefault() bool        { return a.isDefault }
