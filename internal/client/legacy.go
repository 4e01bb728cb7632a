package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"LifeLedger/internal/model"
)

// LegacyClient speaks the older choice-by-id contract under /api/game, which
// exposes all four endpoints including per-day event fetch and status.
type LegacyClient struct {
	BaseURL string
	Client  *http.Client
}

// NewLegacyClient creates a client with the given base URL and call timeout.
func NewLegacyClient(baseURL string, timeout time.Duration) *LegacyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &LegacyClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

func (c *LegacyClient) Name() string { return "legacy" }

func (c *LegacyClient) Supports(_ Operation) bool { return true }

// wireStatus is the legacy condensed stat bundle.
type wireStatus struct {
	GameID string  `json:"game_id"`
	Day    int     `json:"day"`
	Health int     `json:"health"`
	Money  float64 `json:"money"`
	Mood   int     `json:"mood"`
	IsOver bool    `json:"is_over"`
}

// statsFromStatus widens the condensed bundle into canonical stats. Fields
// the legacy contract does not carry stay zero.
func statsFromStatus(ws wireStatus) model.Stats {
	return model.Stats{
		Health:    ws.Health,
		Happiness: ws.Mood,
		Money:     ws.Money,
	}
}

func (ws wireStatus) toStatus() model.Status {
	return model.Status{
		GameID: ws.GameID,
		Day:    ws.Day,
		Health: ws.Health,
		Money:  ws.Money,
		Mood:   ws.Mood,
		IsOver: ws.IsOver,
	}
}

func (c *LegacyClient) StartGame(ctx context.Context, params model.StartRequest) (*StartResult, error) {
	var resp struct {
		GameID string     `json:"game_id"`
		Day    int        `json:"day"`
		Status wireStatus `json:"status"`
		Event  struct {
			EventMessage string         `json:"event_message"`
			Choices      []model.Choice `json:"choices"`
		} `json:"event"`
	}
	if err := doJSON(ctx, c.Client, http.MethodPost, c.BaseURL+"/api/game/start", params, &resp); err != nil {
		return nil, fmt.Errorf("start game: %w", err)
	}
	return &StartResult{
		GameID: resp.GameID,
		Day:    resp.Day,
		Stats:  statsFromStatus(resp.Status),
		Event: model.DayEvent{
			Day:         resp.Day,
			Description: resp.Event.EventMessage,
			Choices:     resp.Event.Choices,
		},
	}, nil
}

func (c *LegacyClient) FetchDayEvent(ctx context.Context, gameID string, day int) (*model.DayEvent, error) {
	var resp struct {
		Description string         `json:"description"`
		Choices     []model.Choice `json:"choices"`
	}
	url := fmt.Sprintf("%s/api/game/%s/day/%d", c.BaseURL, gameID, day)
	if err := doJSON(ctx, c.Client, http.MethodGet, url, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch day event: %w", err)
	}
	return &model.DayEvent{Day: day, Description: resp.Description, Choices: resp.Choices}, nil
}

func (c *LegacyClient) SubmitChoice(ctx context.Context, gameID string, day int, choice model.Choice) (*SubmitResult, error) {
	body := struct {
		Day      int `json:"day"`
		ChoiceID int `json:"choice_id"`
	}{Day: day, ChoiceID: choice.ID}

	var resp struct {
		Status        wireStatus   `json:"status"`
		AppliedChoice model.Choice `json:"applied_choice"`
	}
	url := fmt.Sprintf("%s/api/game/%s/choice", c.BaseURL, gameID)
	if err := doJSON(ctx, c.Client, http.MethodPost, url, body, &resp); err != nil {
		return nil, fmt.Errorf("submit choice: %w", err)
	}
	return &SubmitResult{
		Day:     resp.Status.Day,
		Stats:   statsFromStatus(resp.Status),
		Applied: resp.AppliedChoice,
	}, nil
}

func (c *LegacyClient) FetchStatus(ctx context.Context, gameID string) (*model.Status, error) {
	var resp wireStatus
	url := fmt.Sprintf("%s/api/game/%s/status", c.BaseURL, gameID)
	if err := doJSON(ctx, c.Client, http.MethodGet, url, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch status: %w", err)
	}
	st := resp.toStatus()
	return &st, nil
}
