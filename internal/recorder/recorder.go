package recorder

import "LifeLedger/internal/model"

// DaySnapshot holds the stat vector at the start of a day.
type DaySnapshot struct {
	GameID string
	Day    int
	Stats  model.Stats
	Source string
}

// ChoiceEvent records one resolved day-event choice.
type ChoiceEvent struct {
	GameID      string
	Day         int
	ChoiceID    int
	ChoiceText  string
	HealthDelta int
	MoodDelta   int
	MoneyDelta  float64
	Source      string
}

// ActionEvent records one discretionary action.
type ActionEvent struct {
	GameID     string
	Day        int
	ActionID   string
	Name       string
	TimeCost   float64
	MoneyDelta float64
}

// FinanceEvent records a savings account change.
type FinanceEvent struct {
	GameID  string
	Day     int
	Kind    string // "OPEN", "DEPOSIT", "WITHDRAW", "INTEREST"
	Amount  float64
	Balance float64
}

// RunSummary records the terminal state of a full run.
type RunSummary struct {
	GameID    string
	FinalDay  int
	Stats     model.Stats
	Grade     string
	Source    string
	Completed bool // true when all ten days were played, false on game over
}

// Recorder persists play history for analysis.
type Recorder interface {
	RecordDay(snap *DaySnapshot) error
	RecordChoice(evt *ChoiceEvent) error
	RecordAction(evt *ActionEvent) error
	RecordFinance(evt *FinanceEvent) error
	RecordRun(sum *RunSummary) error
	Close() error
}
