package core

import (
	"errors"
)

// Validation failures: the operation was called with arguments the
// contract rejects outright.
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrInvalidInitialState = errors.New("invalid initial state")
	ErrDuplicateAccount    = errors.New("account number already registered")
	ErrAccountNotFound     = errors.New("account not found")
)

// Business-rule rejections: the arguments were valid but the variant's
// policy refused the operation. No state is mutated.
var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrWithdrawalLimit    = errors.New("monthly withdrawal limit reached")
	ErrDepositCapExceeded = errors.New("deposit would exceed balance cap")
)
