package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"

	"bank/config"
	"bank/internal/core"
	"bank/internal/report"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := run(ctx, logger, report.NewFormatter(cfg.Report)); err != nil {
		logger.ErrorContext(ctx, "demonstration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger core.Logger, formatter report.Formatter) error {
	ledger := core.NewLedger(logger)

	requests := []core.OpenAccountRequest{
		{Kind: core.KindSavings, Number: "SAV-001", Holder: "Alice Nguyen", InitialBalance: decimal.NewFromInt(1000)},
		{Kind: core.KindChecking, Number: "CHK-001", Holder: "Bob Okafor", InitialBalance: decimal.NewFromInt(200)},
		{Kind: core.KindPremium, Number: "PRM-001", Holder: "Carla Mendes", InitialBalance: decimal.NewFromInt(12000)},
		{Kind: core.KindStudent, Number: "STU-001", Holder: "Dan Petrov", InitialBalance: decimal.NewFromInt(100)},
	}

	for _, req := range requests {
		if _, err := ledger.OpenAccount(req); err != nil {
			return fmt.Errorf("open %s: %w", req.Number, err)
		}
	}

	savings, _ := ledger.FindAccount("SAV-001")
	checking, _ := ledger.FindAccount("CHK-001")
	student, _ := ledger.FindAccount("STU-001")

	// Everyday activity on the individual accounts.
	if err := savings.Deposit(decimal.NewFromInt(200)); err != nil {
		return err
	}
	if err := savings.Withdraw(decimal.NewFromInt(100)); err != nil {
		return err
	}

	// Overdraft: the checking account goes negative and pays the fee.
	if err := checking.Withdraw(decimal.NewFromInt(300)); err != nil {
		return err
	}

	// The student cap binds on deposit.
	if err := student.Deposit(decimal.NewFromInt(4900)); err != nil {
		return err
	}
	if err := student.Deposit(decimal.NewFromInt(100)); err != nil {
		fmt.Println("student deposit rejected:", err)
	}

	if err := ledger.Transfer(ctx, "PRM-001", "SAV-001", decimal.NewFromInt(500)); err != nil {
		return err
	}
	if err := ledger.Transfer(ctx, "SAV-001", "PRM-001", decimal.NewFromInt(1000000)); err != nil {
		fmt.Println("transfer rejected:", err)
	}

	ledger.ApplyMonthlyInterest(ctx)

	if err := formatter.WriteReport(os.Stdout, ledger.GenerateReport()); err != nil {
		return err
	}

	fmt.Println()
	for _, number := range []string{"SAV-001", "CHK-001", "PRM-001", "STU-001"} {
		acc, ok := ledger.FindAccount(number)
		if !ok {
			continue
		}
		if err := formatter.WriteStatement(os.Stdout, acc); err != nil {
			return err
		}
		fmt.Println()
	}

	return nil
}
