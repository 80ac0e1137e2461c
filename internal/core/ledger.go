package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// monthlyResettable marks variants whose withdrawal allowance renews at
// each monthly cycle.
type monthlyResettable interface {
	ResetMonthlyCounters()
}

// ReportEntry is one line of a ledger report.
type ReportEntry struct {
	Number  string
	Holder  string
	Balance decimal.Decimal
}

// Ledger is the registry of accounts, keyed by account number. A single
// mutex serializes every ledger operation so a transfer mutates both
// accounts without interleaving.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]Account
	order    []string
	logger   Logger
}

func NewLedger(logger Logger) *Ledger {
	if logger == nil {
		logger = NopLogger{}
	}

	return &Ledger{
		accounts: make(map[string]Account),
		logger:   logger,
	}
}

// CreateAccount registers an already constructed account. A duplicate
// number never replaces the existing entry.
func (l *Ledger) CreateAccount(acc Account) (string, error) {
	if acc == nil {
		return "", fmt.Errorf("%w: account must not be nil", ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	number := acc.Number()
	if _, exists := l.accounts[number]; exists {
		return "", fmt.Errorf("%w: %s", ErrDuplicateAccount, number)
	}

	l.accounts[number] = acc
	l.order = append(l.order, number)
	return number, nil
}

// FindAccount looks an account up by number. Absence is a valid outcome,
// not an error.
func (l *Ledger) FindAccount(number string) (Account, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	acc, ok := l.accounts[number]
	return acc, ok
}

// Transfer moves amount from one account to the other. The destination's
// deposit policy is checked before the source is touched, so a rejected
// transfer mutates neither account and appends no records — a source-side
// overdraft fee or a consumed withdrawal allowance cannot leak out of a
// failed transfer. The transaction records of the two legs carry the
// transfer annotations.
func (l *Ledger) Transfer(ctx context.Context, fromNumber, toNumber string, amount decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if fromNumber == toNumber {
		return fmt.Errorf("%w: source and destination are the same account", ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	from, ok := l.accounts[fromNumber]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, fromNumber)
	}
	to, ok := l.accounts[toNumber]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, toNumber)
	}

	if err := to.canDeposit(amount); err != nil {
		return fmt.Errorf("transfer to %s rejected: %w", toNumber, err)
	}

	if err := from.withdrawAs(amount, "Transfer out to "+toNumber); err != nil {
		return fmt.Errorf("transfer from %s rejected: %w", fromNumber, err)
	}

	if err := to.depositAs(amount, "Transfer in from "+fromNumber); err != nil {
		// canDeposit ran under the same lock, so this branch should be
		// unreachable. Undo the first leg rather than lose the money.
		if undoErr := from.depositAs(amount, "Transfer reversal"); undoErr != nil {
			l.logger.ErrorContext(ctx, "transfer reversal failed",
				"from", fromNumber, "to", toNumber, "error", undoErr)
		}
		return fmt.Errorf("transfer to %s rejected: %w", toNumber, err)
	}

	l.logger.InfoContext(ctx, "transfer complete",
		"from", fromNumber, "to", toNumber, "amount", amount.StringFixed(2))
	return nil
}

// ApplyMonthlyInterest credits interest on every interest-bearing
// account, then resets every monthly withdrawal counter. Interest is
// computed on the balance before any reset, which never touches balance
// anyway.
func (l *Ledger) ApplyMonthlyInterest(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, number := range l.order {
		ib, ok := l.accounts[number].(InterestBearing)
		if !ok {
			continue
		}

		applied := ib.ApplyInterest()
		if applied.IsPositive() {
			l.logger.InfoContext(ctx, "interest applied",
				"account", number, "amount", applied.StringFixed(2))
		}
	}

	for _, number := range l.order {
		if r, ok := l.accounts[number].(monthlyResettable); ok {
			r.ResetMonthlyCounters()
		}
	}
}

// GenerateReport snapshots every registered account in registration
// order.
func (l *Ledger) GenerateReport() []ReportEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]ReportEntry, 0, len(l.order))
	for _, number := range l.order {
		acc := l.accounts[number]
		entries = append(entries, ReportEntry{
			Number:  acc.Number(),
			Holder:  acc.Holder(),
			Balance: acc.Balance(),
		})
	}

	return entries
}
