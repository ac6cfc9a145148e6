package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidCouponCode = errors.New("invalid coupon code format")

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

// NewCouponCode normalizes to upper case; codes are unique per business.
func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}
