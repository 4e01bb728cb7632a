package collection

import "LifeLedger/internal/model"

// Card is one unlockable achievement card.
type Card struct {
	ID          string
	Title       string
	Description string
}

// rule pairs a card with its unlock condition over a finished session.
type rule struct {
	card Card
	met  func(sess *model.GameSession, start model.Stats, completed bool) bool
}

var rules = []rule{
	{
		card: Card{ID: "survivor", Title: "Survivor", Description: "Saw all ten days through to the end."},
		met: func(_ *model.GameSession, _ model.Stats, completed bool) bool {
			return completed
		},
	},
	{
		card: Card{ID: "penny-saver", Title: "Penny Saver", Description: "Finished with more money than you started with."},
		met: func(sess *model.GameSession, start model.Stats, _ bool) bool {
			return sess.Stats.Money > start.Money
		},
	},
	{
		card: Card{ID: "iron-constitution", Title: "Iron Constitution", Description: "Ended the run with health at 80 or above."},
		met: func(sess *model.GameSession, _ model.Stats, _ bool) bool {
			return sess.Stats.Health >= 80
		},
	},
	{
		card: Card{ID: "sunny-side", Title: "Sunny Side", Description: "Ended the run with happiness at 80 or above."},
		met: func(sess *model.GameSession, _ model.Stats, _ bool) bool {
			return sess.Stats.Happiness >= 80
		},
	},
	{
		card: Card{ID: "interest-earned", Title: "Interest Earned", Description: "Closed the run with money in a savings account."},
		met: func(sess *model.GameSession, _ model.Stats, _ bool) bool {
			return sess.Finances.Savings != nil && sess.Finances.Savings.Balance > 0
		},
	},
	{
		card: Card{ID: "high-roller", Title: "High Roller", Description: "Held more than 600 in cash at the end."},
		met: func(sess *model.GameSession, _ model.Stats, _ bool) bool {
			return sess.Stats.Money > 600
		},
	},
	{
		card: Card{ID: "bookkeeper", Title: "Bookkeeper", Description: "Logged at least five ledger entries in one run."},
		met: func(sess *model.GameSession, _ model.Stats, _ bool) bool {
			return len(sess.Finances.Incomes)+len(sess.Finances.Expenses) >= 5
		},
	},
}

// Unlocked returns the cards earned by a finished session.
func Unlocked(sess *model.GameSession, start model.Stats, completed bool) []Card {
	var cards []Card
	for _, r := range rules {
		if r.met(sess, start, completed) {
			cards = append(cards, r.card)
		}
	}
	return cards
}
