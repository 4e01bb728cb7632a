package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"LifeLedger/internal/model"
)

// ImpactClient speaks the impact-object backend contract: POST /game and
// POST /game/{id}/choice with the full impact in the body. That backend has
// no day-event or status endpoints; events arrive together with the game
// state, so Supports reports those operations as absent.
type ImpactClient struct {
	BaseURL string
	Client  *http.Client
}

// NewImpactClient creates a client with the given base URL and call timeout.
// A zero timeout falls back to DefaultTimeout.
func NewImpactClient(baseURL string, timeout time.Duration) *ImpactClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ImpactClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (c *ImpactClient) Name() string { return "impact" }

func (c *ImpactClient) Supports(op Operation) bool {
	return op == OpStartGame || op == OpSubmitChoice
}

// Wire shapes of the impact contract.
type wireStaticProperties struct {
	CharacterName string `json:"character_name"`
	Gender        string `json:"gender"`
	Age           int    `json:"age"`
	Work          bool   `json:"work"`
}

type wireGame struct {
	UserID           int                  `json:"user_id"`
	GameID           string               `json:"game_id"`
	Day              int                  `json:"day"`
	StaticProperties wireStaticProperties `json:"static_properties"`
	Stats            model.Stats          `json:"stats"`
	Finances         model.Finances       `json:"finances"`
}

type wireEventOption struct {
	Description string       `json:"description"`
	Impact      model.Impact `json:"impact"`
}

type wireEvent struct {
	EventID     int               `json:"event_id"`
	Description string            `json:"description"`
	Options     []wireEventOption `json:"options"`
}

// normalizeEvent translates the options-by-index wire shape into the
// canonical choice list with 1-indexed ids.
func normalizeEvent(ev wireEvent, day int) model.DayEvent {
	choices := make([]model.Choice, 0, len(ev.Options))
	for i, opt := range ev.Options {
		choices = append(choices, model.Choice{
			ID:     i + 1,
			Text:   opt.Description,
			Impact: opt.Impact,
		})
	}
	return model.DayEvent{Day: day, Description: ev.Description, Choices: choices}
}

func (c *ImpactClient) StartGame(ctx context.Context, params model.StartRequest) (*StartResult, error) {
	var resp struct {
		GameState wireGame  `json:"game_state"`
		Event     wireEvent `json:"event"`
	}
	if err := doJSON(ctx, c.Client, http.MethodPost, c.BaseURL+"/game", params, &resp); err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	return &StartResult{
		GameID: resp.GameState.GameID,
		Day:    resp.GameState.Day,
		Stats:  resp.GameState.Stats,
		Event:  normalizeEvent(resp.Event, resp.GameState.Day),
	}, nil
}

// FetchDayEvent does not exist on this backend and must not be attempted.
func (c *ImpactClient) FetchDayEvent(_ context.Context, _ string, _ int) (*model.DayEvent, error) {
	return nil, fmt.Errorf("fetch day event: %w", ErrUnsupported)
}

func (c *ImpactClient) SubmitChoice(ctx context.Context, gameID string, _ int, choice model.Choice) (*SubmitResult, error) {
	body := struct {
		Impact model.Impact `json:"impact"`
	}{Impact: choice.Impact}

	var resp struct {
		GameState wireGame `json:"game_state"`
	}
	url := fmt.Sprintf("%s/game/%s/choice", c.BaseURL, gameID)
	if err := doJSON(ctx, c.Client, http.MethodPost, url, body, &resp); err != nil {
		return nil, fmt.Errorf("submit choice: %w", err)
	}
	return &SubmitResult{
		Day:     resp.GameState.Day,
		Stats:   resp.GameState.Stats,
		Applied: choice,
	}, nil
}

// FetchStatus does not exist on this backend; status is part of the choice
// response.
func (c *ImpactClient) FetchStatus(_ context.Context, _ string) (*model.Status, error) {
	return nil, fmt.Errorf("fetch status: %w", ErrUnsupported)
}
