package advisor

import (
	"LifeLedger/internal/finance"
	"LifeLedger/internal/model"
)

// Factor weights, summing to 1.0.
const (
	weightVitality = 0.25
	weightMorale   = 0.25
	weightCash     = 0.20
	weightSavings  = 0.15
	weightSpending = 0.15
)

func factor(name string, raw, weight float64, commentary string) model.FactorScore {
	return model.FactorScore{
		Name:       name,
		RawScore:   raw,
		Weight:     weight,
		Weighted:   raw * weight,
		Commentary: commentary,
	}
}

// scoreVitality grades final health.
func scoreVitality(s model.Stats) model.FactorScore {
	switch {
	case s.Health >= 80:
		return factor("vitality", 2, weightVitality, "health stayed excellent")
	case s.Health >= 60:
		return factor("vitality", 1, weightVitality, "health held up well")
	case s.Health >= 40:
		return factor("vitality", 0, weightVitality, "health took some hits")
	case s.Health >= 20:
		return factor("vitality", -1, weightVitality, "health is running low")
	default:
		return factor("vitality", -2, weightVitality, "health nearly gave out")
	}
}

// scoreMorale grades final happiness.
func scoreMorale(s model.Stats) model.FactorScore {
	switch {
	case s.Happiness >= 80:
		return factor("morale", 2, weightMorale, "spirits stayed high")
	case s.Happiness >= 60:
		return factor("morale", 1, weightMorale, "mood stayed positive")
	case s.Happiness >= 40:
		return factor("morale", 0, weightMorale, "mood wavered")
	case s.Happiness >= 20:
		return factor("morale", -1, weightMorale, "mood sank often")
	default:
		return factor("morale", -2, weightMorale, "mood bottomed out")
	}
}

// scoreCashGrowth grades end money against the starting balance.
func scoreCashGrowth(s, start model.Stats) model.FactorScore {
	if start.Money <= 0 {
		return factor("cash growth", 0, weightCash, "no starting balance to compare")
	}
	ratio := s.Money / start.Money
	switch {
	case ratio >= 1.5:
		return factor("cash growth", 2, weightCash, "your balance grew substantially")
	case ratio >= 1.1:
		return factor("cash growth", 1, weightCash, "you ended ahead of where you started")
	case ratio >= 0.9:
		return factor("cash growth", 0, weightCash, "you roughly broke even")
	case ratio >= 0.5:
		return factor("cash growth", -1, weightCash, "you spent a good chunk of your reserves")
	default:
		return factor("cash growth", -2, weightCash, "your reserves were nearly drained")
	}
}

// scoreSavingsHabit grades how much wealth sits in the savings account.
func scoreSavingsHabit(sess *model.GameSession) model.FactorScore {
	acct := sess.Finances.Savings
	if acct == nil {
		return factor("savings habit", -1, weightSavings, "no savings account was opened")
	}
	total := sess.Stats.Money + acct.Balance
	if total <= 0 {
		return factor("savings habit", -2, weightSavings, "nothing left to save")
	}
	share := acct.Balance / total
	switch {
	case share >= 0.5:
		return factor("savings habit", 2, weightSavings, "most of your wealth earns interest")
	case share >= 0.2:
		return factor("savings habit", 1, weightSavings, "a healthy slice of wealth is saved")
	case share > 0:
		return factor("savings habit", 0, weightSavings, "savings exist but stay small")
	default:
		return factor("savings habit", -1, weightSavings, "the account sat empty")
	}
}

// scoreSpendingBalance grades the run's ledger: income against expenses.
func scoreSpendingBalance(sess *model.GameSession) model.FactorScore {
	income := finance.TotalIncome(&sess.Finances)
	expense := finance.TotalExpense(&sess.Finances)
	if income == 0 && expense == 0 {
		return factor("spending balance", 0, weightSpending, "no ledger activity recorded")
	}
	net := income - expense
	switch {
	case net > 0:
		return factor("spending balance", 1, weightSpending, "you earned more than you spent")
	case net == 0:
		return factor("spending balance", 0, weightSpending, "income and spending matched")
	case expense > 0 && income/expense >= 0.5:
		return factor("spending balance", -1, weightSpending, "spending outpaced earning")
	default:
		return factor("spending balance", -2, weightSpending, "spending ran far ahead of income")
	}
}
