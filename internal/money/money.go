// Package money centralizes monetary arithmetic. All amounts are
// fixed-point decimals; every aggregation step rounds half-up to two
// places before the next one, so rounding is never deferred to the end.
package money

import "github.com/shopspring/decimal"

// Round2 rounds to two decimal places, ties away from zero (half-up).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Zero is 0.00 at two-place precision.
func Zero() decimal.Decimal {
	return decimal.New(0, -2)
}
