package core

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	KindSavings  AccountKind = "savings"
	KindChecking AccountKind = "checking"
	KindPremium  AccountKind = "premium"
	KindStudent  AccountKind = "student"
)

type OpenAccountRequest struct {
	Kind           AccountKind `validate:"required,oneof=savings checking premium student"`
	Number         string      `validate:"required"`
	Holder         string      `validate:"required"`
	InitialBalance decimal.Decimal
	Clock          Clock
}

var validate = validator.New()

// OpenAccount constructs the requested variant and registers it in one
// step. The initial balance is validated by the variant constructor, not
// by struct tags.
func (l *Ledger) OpenAccount(req OpenAccountRequest) (Account, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	var (
		acc Account
		err error
	)
	switch req.Kind {
	case KindSavings:
		acc, err = NewSavingsAccount(req.Number, req.Holder, req.InitialBalance, req.Clock)
	case KindChecking:
		acc, err = NewCheckingAccount(req.Number, req.Holder, req.InitialBalance, req.Clock)
	case KindPremium:
		acc, err = NewPremiumAccount(req.Number, req.Holder, req.InitialBalance, req.Clock)
	case KindStudent:
		acc, err = NewStudentAccount(req.Number, req.Holder, req.InitialBalance, req.Clock)
	}
	if err != nil {
		return nil, err
	}

	if _, err := l.CreateAccount(acc); err != nil {
		return nil, err
	}

	return acc, nil
}
