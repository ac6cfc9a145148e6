// Package money keeps monetary values in integer minor units (cents).
package money

import (
	"fmt"
	"math"
)

type Cents int64

func FromDollars(d float64) Cents {
	return Cents(math.Round(d * 100))
}

func (c Cents) Int64() int64 {
	return int64(c)
}

func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// String renders a fixed two-decimal amount, e.g. "108.00" or "-10.80".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MulRate multiplies by a fractional rate and rounds half away from zero.
func (c Cents) MulRate(rate float64) Cents {
	return Cents(math.Round(float64(c) * rate))
}

// Percent returns p percent of c, rounded half away from zero in integer arithmetic.
func (c Cents) Percent(p int64) Cents {
	v := int64(c) * p
	if v >= 0 {
		return Cents((v + 50) / 100)
	}
	return Cents((v - 50) / 100)
}

func Sum(values ...Cents) Cents {
	var total Cents
	for _, v := range values {
		total += v
	}
	return total
}
