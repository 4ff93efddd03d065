package models

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern accepts exactly one @ with a dotted domain and no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PersonalInfo holds the identity details attached to an account.
type PersonalInfo struct {
	Surname   string `json:"surname"`
	FirstName string `json:"first_name"`
	Address   string `json:"address"`
	Age       int    `json:"age"`
}

// Account is a customer's credentials plus personal information. The email,
// stored normalized, is the account's identity.
//
// The password is stored and compared in plain text. That is a deliberate
// property of this domain, not an oversight.
type Account struct {
	Email    string       `json:"email"`
	Password string       `json:"-"`
	Info     PersonalInfo `json:"info"`
}

// NewAccount validates the inputs and creates an account with a normalized
// email. It fails on an invalid email, a blank password or missing info.
func NewAccount(email, password string, info PersonalInfo) (*Account, error) {
	if !ValidEmail(email) {
		return nil, fmt.Errorf("invalid email address %q", email)
	}
	if strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("password must not be blank")
	}
	return &Account{
		Email:    NormalizeEmail(email),
		Password: password,
		Info:     info,
	}, nil
}

// CheckPassword compares the candidate against the stored password by exact
// equality.
func (a *Account) CheckPassword(candidate string) bool {
	return a.Password == candidate
}

// NormalizeEmail trims and lower-cases an email so it can serve as a lookup
// key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether the (trimmed) address matches the accepted
// email shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

func (a *Account) String() string {
	return fmt.Sprintf("%s %s <%s>", a.Info.Surname, a.Info.FirstName, a.Email)
}
