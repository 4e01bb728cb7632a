package sim

import (
	"testing"

	"LifeLedger/internal/model"
)

func TestPickChoice_Greedy(t *testing.T) {
	ev := &model.DayEvent{
		Day: 1,
		Choices: []model.Choice{
			{ID: 1, Impact: model.Impact{Health: -10, Money: 20}},
			{ID: 2, Impact: model.Impact{Health: 10, Happiness: 10}},
			{ID: 3, Impact: model.Impact{Stress: 30, Money: 50}},
		},
	}
	if got := pickChoice(ev); got != 2 {
		t.Errorf("pickChoice = %d, want 2 (best combined payoff)", got)
	}
}

func TestPickChoice_SingleOption(t *testing.T) {
	ev := &model.DayEvent{Day: 1, Choices: []model.Choice{{ID: 7}}}
	if got := pickChoice(ev); got != 7 {
		t.Errorf("pickChoice = %d, want 7", got)
	}
}
