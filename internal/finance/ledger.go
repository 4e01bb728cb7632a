package finance

import "LifeLedger/internal/model"

// RecordIncome appends a daily income entry.
func RecordIncome(f *model.Finances, source string, amount float64) {
	f.Incomes = append(f.Incomes, model.Income{Source: source, Amount: amount})
}

// RecordExpense appends a daily expense entry.
func RecordExpense(f *model.Finances, category string, amount float64) {
	f.Expenses = append(f.Expenses, model.Expense{Category: category, Amount: amount})
}

// RecordCashDelta files a signed money change under the right side of the
// ledger. Zero deltas are not recorded.
func RecordCashDelta(f *model.Finances, label string, delta float64) {
	switch {
	case delta > 0:
		RecordIncome(f, label, delta)
	case delta < 0:
		RecordExpense(f, label, -delta)
	}
}

// TotalIncome sums all income entries.
func TotalIncome(f *model.Finances) float64 {
	var sum float64
	for _, in := range f.Incomes {
		sum += in.Amount
	}
	return sum
}

// TotalExpense sums all expense entries.
func TotalExpense(f *model.Finances) float64 {
	var sum float64
	for _, ex := range f.Expenses {
		sum += ex.Amount
	}
	return sum
}

// NetFlow is total income minus total expense for the run so far.
func NetFlow(f *model.Finances) float64 {
	return TotalIncome(f) - TotalExpense(f)
}
