package advisor

import "LifeLedger/internal/model"

// Grades defines the verdict ladder from best to worst.
var Grades = []struct {
	MinScore float64
	Grade    model.Grade
}{
	{1.5, model.Grade{Label: "Life Mastery", Blurb: "You balanced body, mind and wallet. Hardly anything to teach you."}},
	{0.8, model.Grade{Label: "Thriving", Blurb: "Strong habits across the board. Keep compounding them."}},
	{0.0, model.Grade{Label: "On Track", Blurb: "Solid footing with room to grow. Watch the weak spots below."}},
	{-0.8, model.Grade{Label: "Wobbly", Blurb: "A few leaks in the boat. Patch the worst one first."}},
	{-1.5, model.Grade{Label: "Struggling", Blurb: "Several habits worked against you this run. Small steps next time."}},
}

// DefaultGrade is the verdict for scores below every ladder rung.
var DefaultGrade = model.Grade{Label: "Crash and Burn", Blurb: "Everything gave out at once. Try guarding one stat at a time."}

// mapGrade maps a total score to a Grade.
func mapGrade(totalScore float64) model.Grade {
	for _, g := range Grades {
		if totalScore >= g.MinScore {
			return g.Grade
		}
	}
	return DefaultGrade
}

// Evaluate scores a finished session against the starting stats and produces
// the mentor's assessment.
func Evaluate(sess *model.GameSession, start model.Stats, completed bool) *model.Assessment {
	f1 := scoreVitality(sess.Stats)
	f2 := scoreMorale(sess.Stats)
	f3 := scoreCashGrowth(sess.Stats, start)
	f4 := scoreSavingsHabit(sess)
	f5 := scoreSpendingBalance(sess)

	factors := []model.FactorScore{f1, f2, f3, f4, f5}

	var total float64
	for _, f := range factors {
		total += f.Weighted
	}

	return &model.Assessment{
		Factors:    factors,
		TotalScore: total,
		Grade:      mapGrade(total),
		Completed:  completed,
	}
}
