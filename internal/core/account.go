package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate go tool go.uber.org/mock/mockgen -source=account.go -destination=account_mock.go -package=core

// Account is the contract every variant satisfies. The policy hooks are
// unexported: the ledger (same package) uses them to label transfer legs
// and to run the deposit policy without mutating (canDeposit), while
// external callers are limited to Deposit and Withdraw. Every rejection
// is returned as an error value; balances are never mutated on a
// rejected operation.
type Account interface {
	Number() string
	Holder() string
	SetHolder(name string) error
	Balance() decimal.Decimal
	Transactions() []Transaction

	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error

	canDeposit(amount decimal.Decimal) error
	depositAs(amount decimal.Decimal, reason string) error
	withdrawAs(amount decimal.Decimal, reason string) error
}

// baseAccount carries the state shared by all variants. changeBalance is
// the only path that mutates balance or appends to the log; variant
// policies route every mutation through it.
type baseAccount struct {
	number       string
	holder       string
	balance      decimal.Decimal
	transactions []Transaction
	clock        Clock
}

func newBaseAccount(number, holder string, initial decimal.Decimal, clock Clock) (baseAccount, error) {
	if strings.TrimSpace(number) == "" {
		return baseAccount{}, fmt.Errorf("%w: account number must not be empty", ErrInvalidArgument)
	}
	if strings.TrimSpace(holder) == "" {
		return baseAccount{}, fmt.Errorf("%w: holder name must not be empty", ErrInvalidArgument)
	}
	if initial.IsNegative() {
		return baseAccount{}, fmt.Errorf("%w: initial balance %s is negative", ErrInvalidInitialState, initial.StringFixed(2))
	}
	if clock == nil {
		clock = SystemClock{}
	}

	return baseAccount{
		number:  number,
		holder:  strings.TrimSpace(holder),
		balance: initial,
		clock:   clock,
	}, nil
}

func (a *baseAccount) Number() string {
	return a.number
}

func (a *baseAccount) Holder() string {
	return a.holder
}

func (a *baseAccount) SetHolder(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: holder name must not be empty", ErrInvalidArgument)
	}

	a.holder = trimmed
	return nil
}

func (a *baseAccount) Balance() decimal.Decimal {
	return a.balance
}

// Transactions returns a copy of the log so callers cannot reorder or
// truncate it.
func (a *baseAccount) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// changeBalance applies a signed delta and appends the matching record.
// Direction is derived from the sign of the delta.
func (a *baseAccount) changeBalance(delta decimal.Decimal, reason string) Transaction {
	a.balance = a.balance.Add(delta)

	direction := Credit
	if delta.IsNegative() {
		direction = Debit
	}

	record := Transaction{
		ID:        uuid.New(),
		Timestamp: a.clock.Now(),
		Direction: direction,
		Amount:    delta.Abs(),
		Reason:    reason,
		Balance:   a.balance,
	}
	a.transactions = append(a.transactions, record)

	return record
}

// validateAmount is the shared skeleton of every deposit/withdraw policy.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount %s must be positive", ErrInvalidArgument, amount.StringFixed(2))
	}
	return nil
}
