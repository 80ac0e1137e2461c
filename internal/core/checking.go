package core

import "github.com/shopspring/decimal"

var overdraftFee = decimal.NewFromFloat(35.00)

// CheckingAccount allows overdrafts: a withdrawal may drive the balance
// negative, in which case a fixed fee is debited as its own record.
type CheckingAccount struct {
	baseAccount
}

func NewCheckingAccount(number, holder string, initial decimal.Decimal, clock Clock) (*CheckingAccount, error) {
	base, err := newBaseAccount(number, holder, initial, clock)
	if err != nil {
		return nil, err
	}

	return &CheckingAccount{baseAccount: base}, nil
}

func (a *CheckingAccount) Deposit(amount decimal.Decimal) error {
	return a.depositAs(amount, "Deposit")
}

func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	return a.withdrawAs(amount, "Withdrawal")
}

func (a *CheckingAccount) canDeposit(amount decimal.Decimal) error {
	return validateAmount(amount)
}

func (a *CheckingAccount) depositAs(amount decimal.Decimal, reason string) error {
	if err := a.canDeposit(amount); err != nil {
		return err
	}

	a.changeBalance(amount, reason)
	return nil
}

func (a *CheckingAccount) withdrawAs(amount decimal.Decimal, reason string) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	a.changeBalance(amount.Neg(), reason)
	if a.balance.IsNegative() {
		a.changeBalance(overdraftFee.Neg(), "Overdraft fee")
	}
	return nil
}
