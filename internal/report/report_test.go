package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"bank/internal/core"
)

type stubClock struct {
	t time.Time
}

func (c stubClock) Now() time.Time {
	return c.t
}

func defaultConfig() Config {
	return Config{
		TimeLayout:     "2006-01-02T15:04:05Z07:00",
		CurrencySymbol: "$",
	}
}

func TestFormatter_AccountLine(t *testing.T) {
	t.Parallel()

	f := NewFormatter(defaultConfig())

	line := f.AccountLine(core.ReportEntry{
		Number:  "CHK-1",
		Holder:  "Bob Okafor",
		Balance: decimal.NewFromFloat(-135),
	})

	require.Equal(t, "Account: CHK-1 | Holder: Bob Okafor | Balance: $-135.00", line)
}

func TestFormatter_TransactionLine(t *testing.T) {
	t.Parallel()

	f := NewFormatter(defaultConfig())

	tx := core.Transaction{
		Timestamp: time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC),
		Direction: core.Debit,
		Amount:    decimal.NewFromFloat(35),
		Reason:    "Overdraft fee",
		Balance:   decimal.NewFromFloat(-135),
	}

	require.Equal(t,
		"2026-09-01T12:30:00Z | Debit | $35.00 | Overdraft fee | Balance: $-135.00",
		f.TransactionLine(tx))
}

func TestFormatter_WriteStatement(t *testing.T) {
	t.Parallel()

	clock := stubClock{t: time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)}
	acc, err := core.NewCheckingAccount("CHK-1", "Bob Okafor", decimal.NewFromInt(200), clock)
	require.NoError(t, err)
	require.NoError(t, acc.Withdraw(decimal.NewFromInt(300)))

	var out strings.Builder
	f := NewFormatter(defaultConfig())
	require.NoError(t, f.WriteStatement(&out, acc))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "Account: CHK-1 | Holder: Bob Okafor | Balance: $-135.00", lines[0])
	require.Equal(t, "2026-09-01T12:30:00Z | Debit | $300.00 | Withdrawal | Balance: $-100.00", lines[1])
	require.Equal(t, "2026-09-01T12:30:00Z | Debit | $35.00 | Overdraft fee | Balance: $-135.00", lines[2])
}

func TestFormatter_WriteReport(t *testing.T) {
	t.Parallel()

	entries := []core.ReportEntry{
		{Number: "SAV-1", Holder: "Alice Nguyen", Balance: decimal.NewFromFloat(1202)},
		{Number: "STU-1", Holder: "Dan Petrov", Balance: decimal.NewFromInt(5000)},
	}

	var out strings.Builder
	f := NewFormatter(defaultConfig())
	require.NoError(t, f.WriteReport(&out, entries))

	require.Equal(t,
		"Account: SAV-1 | Holder: Alice Nguyen | Balance: $1202.00\n"+
			"Account: STU-1 | Holder: Dan Petrov | Balance: $5000.00\n",
		out.String())
}
