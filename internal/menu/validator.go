package menu

import "math"

// Epsilon is the margin used for every price comparison. Receipt prices
// come back from extraction as floats, so exact equality is meaningless.
const Epsilon = 0.01

// Validation is the outcome of checking one extracted price against
// the reference menu.
type Validation struct {
	// ExpectedPrice is the menu price for the item name, nil when the
	// name is not on the menu.
	ExpectedPrice *float64
	Valid         bool
}

// Validate compares an extracted unit price against the menu.
// Unknown names are never valid. Known names are valid when the price
// is within Epsilon of the reference price.
// PURE business logic (no state, no side effects).
func (m *Menu) Validate(name string, price float64) Validation {
	expected, ok := m.Lookup(name)
	if !ok {
		return Validation{}
	}
	return Validation{
		ExpectedPrice: &expected,
		Valid:         math.Abs(expected-price) < Epsilon,
	}
}
