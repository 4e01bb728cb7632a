package model

// ActionType groups discretionary actions by category.
type ActionType string

const (
	ActionEducation ActionType = "education"
	ActionWork      ActionType = "work"
	ActionSocial    ActionType = "social"
	ActionHobby     ActionType = "hobby"
)

// ActionItem is a discretionary, time-costing activity taken outside the main
// event/choice flow. Cost is an optional upfront money cost (0 means free);
// TimeCost is hours deducted from the day's time allocation.
type ActionItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        ActionType `json:"type"`
	Impact      Impact     `json:"impact"`
	Description string     `json:"description"`
	Cost        float64    `json:"cost,omitempty"`
	TimeCost    float64    `json:"time_cost"`
}
