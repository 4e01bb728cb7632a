package client

import (
	"context"
	"errors"

	"LifeLedger/internal/model"
)

// Operation identifies one of the backend calls. Contracts differ on which
// endpoints actually exist; the controller checks Supports instead of probing.
type Operation int

const (
	OpStartGame Operation = iota
	OpFetchDayEvent
	OpSubmitChoice
	OpFetchStatus
)

var (
	// ErrRemoteUnavailable covers network errors, timeouts and non-2xx
	// statuses. The controller recovers from it by falling back to the mock
	// client; it is never surfaced as a hard failure.
	ErrRemoteUnavailable = errors.New("remote backend unavailable")

	// ErrGameNotFound means the referenced session does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidChoice means the submitted choice id is not part of the
	// current event.
	ErrInvalidChoice = errors.New("invalid choice id")

	// ErrUnsupported means the deployed backend contract has no such
	// endpoint.
	ErrUnsupported = errors.New("operation not supported by backend contract")
)

// StartResult is the normalized game-start response.
type StartResult struct {
	GameID string
	Day    int
	Stats  model.Stats
	Event  model.DayEvent
}

// SubmitResult is the normalized choice-submission response. Day is the day
// the backend reports after applying the choice.
type SubmitResult struct {
	Day     int
	Stats   model.Stats
	Applied model.Choice
}

// GameClient is the interface served by both remote contracts and the local
// mock. All implementations return the same normalized shapes so the
// controller is agnostic to which source served a call.
type GameClient interface {
	Name() string
	Supports(op Operation) bool
	StartGame(ctx context.Context, params model.StartRequest) (*StartResult, error)
	FetchDayEvent(ctx context.Context, gameID string, day int) (*model.DayEvent, error)
	SubmitChoice(ctx context.Context, gameID string, day int, choice model.Choice) (*SubmitResult, error)
	FetchStatus(ctx context.Context, gameID string) (*model.Status, error)
}
