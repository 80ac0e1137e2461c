package core

import "github.com/shopspring/decimal"

// InterestBearing marks the variants that accrue monthly interest.
// CalculateInterest is pure; ApplyInterest credits the computed amount
// when it is strictly positive and returns what was credited (zero when
// nothing was).
type InterestBearing interface {
	Account
	CalculateInterest() decimal.Decimal
	ApplyInterest() decimal.Decimal
}

var monthsPerYear = decimal.NewFromInt(12)

// monthlyInterest computes balance × annualRate ÷ 12, rounded half-up to
// cents.
func monthlyInterest(balance, annualRate decimal.Decimal) decimal.Decimal {
	return balance.Mul(annualRate).Div(monthsPerYear).Round(2)
}
