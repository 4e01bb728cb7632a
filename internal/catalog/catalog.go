package catalog

import (
	"fmt"

	"LifeLedger/internal/model"
)

// Catalog supplies day events and discretionary actions from the static pool
// when remote data is unavailable.
type Catalog struct {
	sel Selector
}

// New creates a catalog with the given selection policy.
func New(sel Selector) *Catalog {
	return &Catalog{sel: sel}
}

// PoolSize returns the number of events in the static pool.
func (c *Catalog) PoolSize() int { return len(eventPool) }

// PickEvent selects an event for the given day. Choices are copied so callers
// may not mutate the pool.
func (c *Catalog) PickEvent(day int) model.DayEvent {
	entry := eventPool[c.sel.Pick(day, len(eventPool))]
	choices := make([]model.Choice, len(entry.Choices))
	copy(choices, entry.Choices)
	return model.DayEvent{
		Day:         day,
		Description: entry.Description,
		Choices:     choices,
	}
}

// IntroEvent builds the first-day event from the character parameters.
func (c *Catalog) IntroEvent(params model.StartRequest) model.DayEvent {
	opening := "beginning a new chapter in life"
	if params.Work {
		opening = "starting a new job"
	}
	return model.DayEvent{
		Day: 1,
		Description: fmt.Sprintf("You are %s, %d years old. You are %s.",
			params.CharacterName, params.Age, opening),
		Choices: []model.Choice{
			{ID: 1, Text: "Prepare early and tackle it head-on", Impact: model.Impact{Health: 5, Happiness: 10}},
			{ID: 2, Text: "Start normally with a balanced approach", Impact: model.Impact{Happiness: 5}},
			{ID: 3, Text: "Take it easy and start at your own pace", Impact: model.Impact{Health: 10, Happiness: 15, Money: -5}},
		},
	}
}

// Actions returns the discretionary action pool.
func Actions() []model.ActionItem {
	out := make([]model.ActionItem, len(actionPool))
	copy(out, actionPool)
	return out
}

// ActionByID returns the action with the given id, or nil.
func ActionByID(id string) *model.ActionItem {
	for i := range actionPool {
		if actionPool[i].ID == id {
			a := actionPool[i]
			return &a
		}
	}
	return nil
}
