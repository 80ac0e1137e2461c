package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewPremiumAccount_MinimumInitialBalance(t *testing.T) {
	t.Parallel()

	_, err := NewPremiumAccount("PRM-1", "Carla", decimal.NewFromInt(9999), testClock)
	require.ErrorIs(t, err, ErrInvalidInitialState)

	acc, err := NewPremiumAccount("PRM-1", "Carla", decimal.NewFromInt(10000), testClock)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(10000).Equal(acc.Balance()))
}

func TestPremiumAccount_Withdraw(t *testing.T) {
	t.Parallel()

	acc, err := NewPremiumAccount("PRM-1", "Carla", decimal.NewFromInt(10000), testClock)
	require.NoError(t, err)

	require.NoError(t, acc.Withdraw(decimal.NewFromInt(10000)))
	require.True(t, acc.Balance().IsZero())

	err = acc.Withdraw(decimal.NewFromFloat(0.01))
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.True(t, acc.Balance().IsZero())
	require.Len(t, acc.Transactions(), 1)
}

func TestPremiumAccount_Interest(t *testing.T) {
	t.Parallel()

	acc, err := NewPremiumAccount("PRM-1", "Carla", decimal.NewFromInt(12000), testClock)
	require.NoError(t, err)

	// 12000 × 0.05 ÷ 12 = 50.00
	interest := acc.CalculateInterest()
	require.True(t, decimal.NewFromInt(50).Equal(interest), "interest = %s", interest)

	applied := acc.ApplyInterest()
	require.True(t, interest.Equal(applied))
	require.True(t, decimal.NewFromInt(12050).Equal(acc.Balance()))

	txs := acc.Transactions()
	require.Len(t, txs, 1)
	require.Equal(t, "Premium monthly interest", txs[0].Reason)
}

func TestApplyInterest_ZeroBalanceIsNoOp(t *testing.T) {
	t.Parallel()

	acc, err := NewPremiumAccount("PRM-1", "Carla", decimal.NewFromInt(10000), testClock)
	require.NoError(t, err)
	require.NoError(t, acc.Withdraw(decimal.NewFromInt(10000)))

	applied := acc.ApplyInterest()
	require.True(t, applied.IsZero())
	require.True(t, acc.Balance().IsZero())
	require.Len(t, acc.Transactions(), 1, "no interest record on a zero balance")
}
