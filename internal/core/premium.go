package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	premiumAnnualRate     = decimal.NewFromFloat(0.05)
	premiumMinimumInitial = decimal.NewFromInt(10000)
)

// PremiumAccount accrues 5%/yr interest; withdrawals may not exceed the
// balance.
type PremiumAccount struct {
	baseAccount
}

func NewPremiumAccount(number, holder string, initial decimal.Decimal, clock Clock) (*PremiumAccount, error) {
	base, err := newBaseAccount(number, holder, initial, clock)
	if err != nil {
		return nil, err
	}
	if initial.LessThan(premiumMinimumInitial) {
		return nil, fmt.Errorf("%w: premium account requires an initial balance of at least %s",
			ErrInvalidInitialState, premiumMinimumInitial.StringFixed(2))
	}

	return &PremiumAccount{baseAccount: base}, nil
}

func (a *PremiumAccount) Deposit(amount decimal.Decimal) error {
	return a.depositAs(amount, "Deposit")
}

func (a *PremiumAccount) Withdraw(amount decimal.Decimal) error {
	return a.withdrawAs(amount, "Withdrawal")
}

func (a *PremiumAccount) canDeposit(amount decimal.Decimal) error {
	return validateAmount(amount)
}

func (a *PremiumAccount) depositAs(amount decimal.Decimal, reason string) error {
	if err := a.canDeposit(amount); err != nil {
		return err
	}

	a.changeBalance(amount, reason)
	return nil
}

func (a *PremiumAccount) withdrawAs(amount decimal.Decimal, reason string) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, a.balance.StringFixed(2), amount.StringFixed(2))
	}

	a.changeBalance(amount.Neg(), reason)
	return nil
}

func (a *PremiumAccount) CalculateInterest() decimal.Decimal {
	return monthlyInterest(a.balance, premiumAnnualRate)
}

func (a *PremiumAccount) ApplyInterest() decimal.Decimal {
	interest := a.CalculateInterest()
	if !interest.IsPositive() {
		return decimal.Zero
	}

	a.changeBalance(interest, "Premium monthly interest")
	return interest
}
