package collection

import (
	"testing"

	"LifeLedger/internal/model"
)

func hasCard(cards []Card, id string) bool {
	for _, c := range cards {
		if c.ID == id {
			return true
		}
	}
	return false
}

func TestUnlocked(t *testing.T) {
	start := model.Stats{Health: 70, Happiness: 70, Money: 400}

	t.Run("collapsed run earns nothing", func(t *testing.T) {
		sess := &model.GameSession{Stats: model.Stats{Health: 0, Happiness: 10, Money: 0}}
		if got := Unlocked(sess, start, false); len(got) != 0 {
			t.Errorf("expected no cards, got %v", got)
		}
	})

	t.Run("strong run earns most cards", func(t *testing.T) {
		sess := &model.GameSession{
			Stats: model.Stats{Health: 85, Happiness: 85, Money: 650},
			Finances: model.Finances{
				Incomes: []model.Income{
					{Source: "gig", Amount: 15}, {Source: "gig", Amount: 15}, {Source: "gig", Amount: 15},
				},
				Expenses: []model.Expense{
					{Category: "tutor", Amount: 30}, {Category: "date", Amount: 10},
				},
				Savings: &model.SavingsAccount{Type: model.AccountFixed, Balance: 200},
			},
		}
		got := Unlocked(sess, start, true)
		for _, id := range []string{"survivor", "penny-saver", "iron-constitution", "sunny-side", "interest-earned", "high-roller", "bookkeeper"} {
			if !hasCard(got, id) {
				t.Errorf("missing card %q in %v", id, got)
			}
		}
	})

	t.Run("survivor requires completion", func(t *testing.T) {
		sess := &model.GameSession{Stats: model.Stats{Health: 85, Happiness: 50, Money: 100}}
		if got := Unlocked(sess, start, false); hasCard(got, "survivor") {
			t.Error("survivor should need a completed run")
		}
	})
}
