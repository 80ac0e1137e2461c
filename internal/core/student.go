package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var studentBalanceCap = decimal.NewFromInt(5000)

// StudentAccount caps the balance at 5000. The cap is enforced on every
// deposit, not just at creation.
type StudentAccount struct {
	baseAccount
}

func NewStudentAccount(number, holder string, initial decimal.Decimal, clock Clock) (*StudentAccount, error) {
	base, err := newBaseAccount(number, holder, initial, clock)
	if err != nil {
		return nil, err
	}
	if initial.GreaterThan(studentBalanceCap) {
		return nil, fmt.Errorf("%w: student account balance may not exceed %s",
			ErrInvalidInitialState, studentBalanceCap.StringFixed(2))
	}

	return &StudentAccount{baseAccount: base}, nil
}

func (a *StudentAccount) Deposit(amount decimal.Decimal) error {
	return a.depositAs(amount, "Deposit")
}

func (a *StudentAccount) Withdraw(amount decimal.Decimal) error {
	return a.withdrawAs(amount, "Withdrawal")
}

func (a *StudentAccount) canDeposit(amount decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if a.balance.Add(amount).GreaterThan(studentBalanceCap) {
		return fmt.Errorf("%w: balance %s plus %s exceeds cap %s",
			ErrDepositCapExceeded, a.balance.StringFixed(2), amount.StringFixed(2), studentBalanceCap.StringFixed(2))
	}
	return nil
}

func (a *StudentAccount) depositAs(amount decimal.Decimal, reason string) error {
	if err := a.canDeposit(amount); err != nil {
		return err
	}

	a.changeBalance(amount, reason)
	return nil
}

func (a *StudentAccount) withdrawAs(amount decimal.Decimal, reason string) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.balance) {
		return fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, a.balance.StringFixed(2), amount.StringFixed(2))
	}

	a.changeBalance(amount.Neg(), reason)
	return nil
}
