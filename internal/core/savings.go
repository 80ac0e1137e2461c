package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const savingsWithdrawalLimit = 3

var (
	savingsAnnualRate     = decimal.NewFromFloat(0.02)
	savingsMinimumInitial = decimal.NewFromInt(500)
)

// SavingsAccount accrues 2%/yr interest and allows at most three
// withdrawals per monthly cycle.
type SavingsAccount struct {
	baseAccount
	withdrawals int
}

func NewSavingsAccount(number, holder string, initial decimal.Decimal, clock Clock) (*SavingsAccount, error) {
	base, err := newBaseAccount(number, holder, initial, clock)
	if err != nil {
		return nil, err
	}
	if initial.LessThan(savingsMinimumInitial) {
		return nil, fmt.Errorf("%w: savings account requires an initial balance of at least %s",
			ErrInvalidInitialState, savingsMinimumInitial.StringFixed(2))
	}

	return &SavingsAccount{baseAccount: base}, nil
}

func (a *SavingsAccount) Deposit(amount decimal.Decimal) error {
	return a.depositAs(amount, "Deposit")
}

func (a *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	return a.withdrawAs(amount, "Withdrawal")
}

func (a *SavingsAccount) canDeposit(amount decimal.Decimal) error {
	return validateAmount(amount)
}

func (a *SavingsAccount) depositAs(amount decimal.Decimal, reason string) error {
	if err := a.canDeposit(amount); err != nil {
		return err
	}

	a.changeBalance(amount, reason)
	return nil
}

func (a *SavingsAccount) withdrawAs(amount decimal.Decimal, reason string) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if a.withdrawals >= savingsWithdrawalLimit {
		return fmt.Errorf("%w: %d withdrawals already made this cycle", ErrWithdrawalLimit, a.withdrawals)
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, a.balance.StringFixed(2), amount.StringFixed(2))
	}

	a.changeBalance(amount.Neg(), reason)
	a.withdrawals++
	return nil
}

// ResetMonthlyCounters restores the full withdrawal allowance. Invoked by
// the ledger at every monthly interest cycle, after interest is applied.
func (a *SavingsAccount) ResetMonthlyCounters() {
	a.withdrawals = 0
}

func (a *SavingsAccount) CalculateInterest() decimal.Decimal {
	return monthlyInterest(a.balance, savingsAnnualRate)
}

func (a *SavingsAccount) ApplyInterest() decimal.Decimal {
	interest := a.CalculateInterest()
	if !interest.IsPositive() {
		return decimal.Zero
	}

	a.changeBalance(interest, "Savings monthly interest")
	return interest
}
