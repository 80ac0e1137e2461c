package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLedger_OpenAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		req           OpenAccountRequest
		expectedError error
		expectedType  any
	}{
		{
			name: "savings",
			req: OpenAccountRequest{
				Kind:           KindSavings,
				Number:         "SAV-1",
				Holder:         "Alice",
				InitialBalance: decimal.NewFromInt(600),
			},
			expectedType: &SavingsAccount{},
		},
		{
			name: "checking",
			req: OpenAccountRequest{
				Kind:           KindChecking,
				Number:         "CHK-1",
				Holder:         "Bob",
				InitialBalance: decimal.Zero,
			},
			expectedType: &CheckingAccount{},
		},
		{
			name: "premium",
			req: OpenAccountRequest{
				Kind:           KindPremium,
				Number:         "PRM-1",
				Holder:         "Carla",
				InitialBalance: decimal.NewFromInt(10000),
			},
			expectedType: &PremiumAccount{},
		},
		{
			name: "student",
			req: OpenAccountRequest{
				Kind:           KindStudent,
				Number:         "STU-1",
				Holder:         "Dan",
				InitialBalance: decimal.NewFromInt(100),
			},
			expectedType: &StudentAccount{},
		},
		{
			name: "unknown kind",
			req: OpenAccountRequest{
				Kind:           "offshore",
				Number:         "OFF-1",
				Holder:         "Eve",
				InitialBalance: decimal.NewFromInt(100),
			},
			expectedError: ErrInvalidArgument,
		},
		{
			name: "missing number",
			req: OpenAccountRequest{
				Kind:           KindChecking,
				Holder:         "Eve",
				InitialBalance: decimal.NewFromInt(100),
			},
			expectedError: ErrInvalidArgument,
		},
		{
			name: "missing holder",
			req: OpenAccountRequest{
				Kind:           KindChecking,
				Number:         "CHK-2",
				InitialBalance: decimal.NewFromInt(100),
			},
			expectedError: ErrInvalidArgument,
		},
		{
			name: "negative initial balance",
			req: OpenAccountRequest{
				Kind:           KindChecking,
				Number:         "CHK-3",
				Holder:         "Eve",
				InitialBalance: decimal.NewFromInt(-1),
			},
			expectedError: ErrInvalidInitialState,
		},
		{
			name: "below savings minimum",
			req: OpenAccountRequest{
				Kind:           KindSavings,
				Number:         "SAV-2",
				Holder:         "Eve",
				InitialBalance: decimal.NewFromInt(100),
			},
			expectedError: ErrInvalidInitialState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ledger := newTestLedger(t)
			acc, err := ledger.OpenAccount(tt.req)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				_, found := ledger.FindAccount(tt.req.Number)
				require.False(t, found, "a rejected request must not register anything")
				return
			}

			require.NoError(t, err)
			require.IsType(t, tt.expectedType, acc)
			require.Equal(t, tt.req.Number, acc.Number())

			registered, found := ledger.FindAccount(tt.req.Number)
			require.True(t, found)
			require.Same(t, acc, registered)
		})
	}
}

func TestLedger_OpenAccount_DuplicateNumber(t *testing.T) {
	t.Parallel()

	ledger := newTestLedger(t)

	first, err := ledger.OpenAccount(OpenAccountRequest{
		Kind:           KindChecking,
		Number:         "CHK-1",
		Holder:         "Bob",
		InitialBalance: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	_, err = ledger.OpenAccount(OpenAccountRequest{
		Kind:           KindStudent,
		Number:         "CHK-1",
		Holder:         "Dan",
		InitialBalance: decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, ErrDuplicateAccount)

	registered, found := ledger.FindAccount("CHK-1")
	require.True(t, found)
	require.Same(t, first, registered)
}
