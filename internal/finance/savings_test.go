package finance

import (
	"errors"
	"math"
	"testing"

	"LifeLedger/internal/model"
)

func TestOpen(t *testing.T) {
	var f model.Finances
	if err := Open(&f, model.AccountFixed, 3.65); err != nil {
		t.Fatalf("open: %v", err)
	}
	if f.Savings == nil || f.Savings.Type != model.AccountFixed || f.Savings.AnnualRate != 3.65 {
		t.Fatalf("account not initialized: %+v", f.Savings)
	}

	if err := Open(&f, model.AccountFlexible, 1.0); !errors.Is(err, ErrAccountExists) {
		t.Errorf("second open: got %v, want ErrAccountExists", err)
	}

	var g model.Finances
	if err := Open(&g, model.AccountType("bogus"), 1.0); err == nil {
		t.Error("bogus account type should be rejected")
	}
}

func TestDepositWithdraw(t *testing.T) {
	acct := &model.SavingsAccount{Type: model.AccountFlexible}

	if err := Deposit(acct, 200); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if acct.Balance != 200 {
		t.Fatalf("balance: got %.2f, want 200", acct.Balance)
	}
	if err := Deposit(acct, -5); err == nil {
		t.Error("negative deposit should be rejected")
	}

	if err := Withdraw(acct, 250); !errors.Is(err, ErrInsufficientSavings) {
		t.Errorf("overdraw: got %v, want ErrInsufficientSavings", err)
	}
	if err := Withdraw(acct, 50); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if acct.Balance != 150 {
		t.Errorf("balance after withdraw: got %.2f, want 150", acct.Balance)
	}
	if acct.Withdrawals != 0 {
		t.Errorf("flexible accounts should not count withdrawals, got %d", acct.Withdrawals)
	}

	if err := Deposit(nil, 10); !errors.Is(err, ErrNoAccount) {
		t.Errorf("nil account deposit: got %v, want ErrNoAccount", err)
	}
}

func TestWithdraw_FixedLimit(t *testing.T) {
	acct := &model.SavingsAccount{Type: model.AccountFixed, Balance: 300}

	for i := 0; i < model.MaxFixedWithdrawals; i++ {
		if err := Withdraw(acct, 50); err != nil {
			t.Fatalf("withdrawal %d: %v", i+1, err)
		}
	}
	if err := Withdraw(acct, 50); !errors.Is(err, ErrWithdrawLimit) {
		t.Fatalf("third withdrawal: got %v, want ErrWithdrawLimit", err)
	}
	if acct.Balance != 200 {
		t.Errorf("balance: got %.2f, want 200", acct.Balance)
	}
}

func TestAccrueDailyInterest(t *testing.T) {
	acct := &model.SavingsAccount{Type: model.AccountFlexible, Balance: 100, AnnualRate: 3.65}

	got := AccrueDailyInterest(acct)
	if math.Abs(got-3.65) > 1e-9 {
		t.Errorf("interest: got %.4f, want 3.65", got)
	}
	if math.Abs(acct.Balance-103.65) > 1e-9 {
		t.Errorf("balance: got %.4f, want 103.65", acct.Balance)
	}

	if got := AccrueDailyInterest(nil); got != 0 {
		t.Errorf("nil account interest: got %.2f, want 0", got)
	}
	empty := &model.SavingsAccount{Type: model.AccountFixed, AnnualRate: 5}
	if got := AccrueDailyInterest(empty); got != 0 {
		t.Errorf("empty account interest: got %.2f, want 0", got)
	}
}

func TestLedger(t *testing.T) {
	var f model.Finances
	RecordCashDelta(&f, "gig", 15)
	RecordCashDelta(&f, "tutor", -30)
	RecordCashDelta(&f, "noop", 0)

	if len(f.Incomes) != 1 || len(f.Expenses) != 1 {
		t.Fatalf("ledger entries: %d incomes, %d expenses", len(f.Incomes), len(f.Expenses))
	}
	if f.Expenses[0].Amount != 30 {
		t.Errorf("expense amounts are stored positive, got %.2f", f.Expenses[0].Amount)
	}
	if TotalIncome(&f) != 15 || TotalExpense(&f) != 30 {
		t.Errorf("totals: income %.2f, expense %.2f", TotalIncome(&f), TotalExpense(&f))
	}
	if NetFlow(&f) != -15 {
		t.Errorf("net flow: got %.2f, want -15", NetFlow(&f))
	}
}
