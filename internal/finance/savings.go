package finance

import (
	"errors"
	"fmt"

	"LifeLedger/internal/model"
)

var (
	// ErrWithdrawLimit means a fixed account has used both lifetime
	// withdrawals.
	ErrWithdrawLimit = errors.New("fixed account withdrawal limit reached")

	// ErrInsufficientSavings means the withdrawal exceeds the balance.
	ErrInsufficientSavings = errors.New("insufficient savings balance")

	// ErrAccountExists means the session already has a savings account.
	ErrAccountExists = errors.New("savings account already open")

	// ErrNoAccount means no savings account is open.
	ErrNoAccount = errors.New("no savings account open")
)

// Open creates the session's savings account. One account per run.
func Open(f *model.Finances, typ model.AccountType, annualRate float64) error {
	if f.Savings != nil {
		return ErrAccountExists
	}
	if typ != model.AccountFixed && typ != model.AccountFlexible {
		return fmt.Errorf("unknown account type %q", typ)
	}
	f.Savings = &model.SavingsAccount{Type: typ, AnnualRate: annualRate}
	return nil
}

// Deposit adds amount to the savings balance. The caller is responsible for
// deducting the same amount from cash first.
func Deposit(acct *model.SavingsAccount, amount float64) error {
	if acct == nil {
		return ErrNoAccount
	}
	if amount <= 0 {
		return fmt.Errorf("deposit amount must be positive, got %.2f", amount)
	}
	acct.Balance += amount
	return nil
}

// Withdraw removes amount from the savings balance, enforcing the fixed
// account's lifetime limit. The caller credits the cash side.
func Withdraw(acct *model.SavingsAccount, amount float64) error {
	if acct == nil {
		return ErrNoAccount
	}
	if amount <= 0 {
		return fmt.Errorf("withdraw amount must be positive, got %.2f", amount)
	}
	if acct.Type == model.AccountFixed && acct.Withdrawals >= model.MaxFixedWithdrawals {
		return ErrWithdrawLimit
	}
	if amount > acct.Balance {
		return ErrInsufficientSavings
	}
	acct.Balance -= amount
	if acct.Type == model.AccountFixed {
		acct.Withdrawals++
	}
	return nil
}

// AccrueDailyInterest compounds one day of interest and returns the amount
// added. The full annual rate is applied per day transition, matching the
// product's observed behavior (a 3.65% account turns 100 into 103.65
// overnight).
func AccrueDailyInterest(acct *model.SavingsAccount) float64 {
	if acct == nil || acct.Balance <= 0 {
		return 0
	}
	interest := acct.Balance * acct.AnnualRate / 100
	acct.Balance += interest
	return interest
}
