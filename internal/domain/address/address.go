package address

import (
	"errors"
	"strings"
)

var ErrIncompleteAddress = errors.New("address requires line1, city, state and postal code")

const DefaultCountry = "US"

type Address struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Normalize trims fields and fills in the default country.
func (a Address) Normalize() Address {
	out := Address{
		Line1:      strings.TrimSpace(a.Line1),
		Line2:      strings.TrimSpace(a.Line2),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Country:    strings.ToUpper(strings.TrimSpace(a.Country)),
	}
	if out.Country == "" {
		out.Country = DefaultCountry
	}
	return out
}

func (a Address) Validate() error {
	if a.Line1 == "" || a.City == "" || a.State == "" || a.PostalCode == "" {
		return ErrIncompleteAddress
	}
	return nil
}

func (a Address) IsZero() bool {
	return a == Address{}
}
