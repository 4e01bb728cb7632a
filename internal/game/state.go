package game

import "errors"

// State is the controller's lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateAwaitingChoice
	StateResolving
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateResolving:
		return "resolving"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	// ErrNotStarted means no game session exists yet.
	ErrNotStarted = errors.New("game not started")

	// ErrAlreadyStarted means Start was called twice on one controller.
	ErrAlreadyStarted = errors.New("game already started")

	// ErrChoicePending rejects a second choice submission while the previous
	// one is still resolving. The caller retries after the first resolves;
	// deltas are never applied twice.
	ErrChoicePending = errors.New("a choice is already being resolved")

	// ErrGameFinished blocks any progression past the final day or after a
	// terminal stat condition.
	ErrGameFinished = errors.New("game is finished")

	// ErrNoEvent means no day event is loaded to choose from.
	ErrNoEvent = errors.New("no event loaded")

	// ErrInsufficientTime means an action costs more hours than remain today.
	ErrInsufficientTime = errors.New("not enough time left today")

	// ErrInsufficientFunds means an action or deposit costs more money than
	// is on hand.
	ErrInsufficientFunds = errors.New("not enough money")
)
