package model

// AccountType distinguishes the two savings account kinds.
type AccountType string

const (
	AccountFixed    AccountType = "fixed"
	AccountFlexible AccountType = "flexible"
)

// MaxFixedWithdrawals is the lifetime withdrawal limit for fixed accounts.
const MaxFixedWithdrawals = 2

// Income is one daily income ledger entry.
type Income struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
}

// Expense is one daily expense ledger entry.
type Expense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// SavingsAccount is an interest-bearing money sub-ledger. AnnualRate is a
// percentage (3.65 means 3.65%).
type SavingsAccount struct {
	Type        AccountType `json:"type"`
	Balance     float64     `json:"balance"`
	AnnualRate  float64     `json:"interest_rate"`
	Withdrawals int         `json:"withdraw_count"`
}

// Finances is the per-session finance sub-state.
type Finances struct {
	Incomes  []Income        `json:"incomes"`
	Expenses []Expense       `json:"expenses"`
	Savings  *SavingsAccount `json:"savings_account"`
}
