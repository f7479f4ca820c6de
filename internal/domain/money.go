package domain

import (
	"fmt"
	"math"
)

// Cents is a money amount in integer cents. All price arithmetic in the
// service happens in cents; conversion to a display string or to float
// dollars is done only at the edges.
type Cents int64

// MulRound multiplies the amount by a float multiplier and rounds the
// result half away from zero.
func (c Cents) MulRound(multiplier float64) Cents {
	return Cents(math.Round(float64(c) * multiplier))
}

// Dollars returns the amount as float dollars. For display purposes only.
func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

// Format renders the amount as a dollar string, e.g. "$58.00".
func (c Cents) Format() string {
	sign := ""
	v := c
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
