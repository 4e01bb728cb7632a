package model

// Choice is one selectable option of a day event. IDs are 1-indexed within
// their event.
type Choice struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Impact Impact `json:"impact"`
}

// DayEvent is the narrative prompt and choice set presented once per in-game
// day. This is the canonical internal shape; backend wire variants are
// normalized into it by the client package.
type DayEvent struct {
	Day         int      `json:"day"`
	Description string   `json:"description"`
	Choices     []Choice `json:"choices"`
}

// ChoiceByID returns the choice with the given id, or nil.
func (e *DayEvent) ChoiceByID(id int) *Choice {
	for i := range e.Choices {
		if e.Choices[i].ID == id {
			return &e.Choices[i]
		}
	}
	return nil
}

// ChoiceResult echoes an applied choice together with the updated status.
type ChoiceResult struct {
	Status        Status `json:"status"`
	AppliedChoice Choice `json:"applied_choice"`
}
