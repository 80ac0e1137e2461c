// Package report renders ledger state as human-readable console lines.
// Core returns structured results; nothing in this package mutates
// accounts.
package report

import (
	"fmt"
	"io"

	"bank/internal/core"
)

type Formatter struct {
	cfg Config
}

func NewFormatter(cfg Config) Formatter {
	return Formatter{cfg: cfg}
}

// AccountLine renders one report entry:
// "Account: {number} | Holder: {name} | Balance: ${balance}".
func (f Formatter) AccountLine(e core.ReportEntry) string {
	return fmt.Sprintf("Account: %s | Holder: %s | Balance: %s%s",
		e.Number, e.Holder, f.cfg.CurrencySymbol, e.Balance.StringFixed(2))
}

// Summary renders an account's current state; the account-facing
// equivalent of AccountLine.
func (f Formatter) Summary(acc core.Account) string {
	return f.AccountLine(core.ReportEntry{
		Number:  acc.Number(),
		Holder:  acc.Holder(),
		Balance: acc.Balance(),
	})
}

// TransactionLine renders one log record:
// "{timestamp} | {Credit|Debit} | ${amount} | {reason} | Balance: ${balance}".
func (f Formatter) TransactionLine(tx core.Transaction) string {
	return fmt.Sprintf("%s | %s | %s%s | %s | Balance: %s%s",
		tx.Timestamp.Format(f.cfg.TimeLayout),
		tx.Direction,
		f.cfg.CurrencySymbol, tx.Amount.StringFixed(2),
		tx.Reason,
		f.cfg.CurrencySymbol, tx.Balance.StringFixed(2))
}

// WriteReport prints one line per registered account.
func (f Formatter) WriteReport(w io.Writer, entries []core.ReportEntry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, f.AccountLine(e)); err != nil {
			return err
		}
	}
	return nil
}

// WriteStatement prints an account summary followed by its full
// transaction log.
func (f Formatter) WriteStatement(w io.Writer, acc core.Account) error {
	if _, err := fmt.Fprintln(w, f.Summary(acc)); err != nil {
		return err
	}
	for _, tx := range acc.Transactions() {
		if _, err := fmt.Fprintln(w, f.TransactionLine(tx)); err != nil {
			return err
		}
	}
	return nil
}
