package user

// Credentials is a validated login request. Checking the password against
// the account is the auth service's job.
type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }

type Registration struct {
	name     string
	email    Email
	password Password
}

func NewRegistration(name, emailStr, passwordStr string) (Registration, error) {
	validName, err := validateName(name)
	if err != nil {
		return Registration{}, err
	}

	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}

	return Registration{
		name:     validName,
		email:    creds.email,
		password: creds.password,
	}, nil
}

func (r Registration) Name() string       { return r.name }
func (r Registration) Email() Email       { return r.email }
func (r Registration) Password() Password { return r.password }

// Verification confirms ownership of the email used at registration.
type Verification struct {
	email Email
	code  VerificationCode
}

func NewVerification(emailStr, codeStr string) (Verification, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Verification{}, err
	}
	code, err := NewVerificationCode(codeStr)
	if err != nil {
		return Verification{}, err
	}
	return Verification{email: email, code: code}, nil
}

func (v Verification) Email() Email           { return v.email }
func (v Verification) Code() VerificationCode { return v.code }
