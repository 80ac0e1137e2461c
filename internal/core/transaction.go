package core

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Direction string

const (
	Credit Direction = "Credit"
	Debit  Direction = "Debit"
)

// Transaction is one entry of an account's append-only log. Records are
// immutable once appended; Amount is always the absolute value and
// Balance is the snapshot right after the mutation.
type Transaction struct {
	ID        uuid.UUID
	Timestamp time.Time
	Direction Direction
	Amount    decimal.Decimal
	Reason    string
	Balance   decimal.Decimal
}
