package model

// Source identifies which backend served a call.
type Source string

const (
	SourceAPI  Source = "api"
	SourceMock Source = "mock"
)

// StartRequest carries the character-creation parameters for a new game.
type StartRequest struct {
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	CharacterName string `json:"character_name"`
	Work          bool   `json:"work"`
}

// GameSession aggregates all in-memory state for one run. It lives only for
// the process lifetime and is mutated exclusively by the progression
// controller.
type GameSession struct {
	GameID            string
	Day               int
	Stats             Stats
	Bankrupt          bool
	CurrentEvent      *DayEvent
	Params            StartRequest
	TimeAllocation    float64
	MaxTimeAllocation float64
	Finances          Finances
	Source            Source
}

// Status derives the condensed status view from the session.
func (s *GameSession) Status() Status {
	return Status{
		GameID: s.GameID,
		Day:    s.Day,
		Health: s.Stats.Health,
		Money:  s.Stats.Money,
		Mood:   s.Stats.Happiness,
		IsOver: Terminal(s.Stats, s.Bankrupt),
	}
}
