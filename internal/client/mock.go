package client

import (
	"context"
	"fmt"
	"sync"

	"LifeLedger/internal/catalog"
	"LifeLedger/internal/model"

	"github.com/google/uuid"
)

// MockClient produces the same response shapes as the remote contracts from
// local computation only. Sessions are kept in an explicit keyed store, so
// several mock games can run side by side.
type MockClient struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	start    model.Stats
	sessions map[string]*mockSession
}

type mockSession struct {
	id       string
	day      int
	stats    model.Stats
	bankrupt bool
	event    model.DayEvent
}

// NewMockClient creates a fallback client drawing events from the given
// catalog and starting every game with the given stats.
func NewMockClient(cat *catalog.Catalog, start model.Stats) *MockClient {
	return &MockClient{
		catalog:  cat,
		start:    start,
		sessions: make(map[string]*mockSession),
	}
}

func (m *MockClient) Name() string { return "mock" }

func (m *MockClient) Supports(_ Operation) bool { return true }

func (m *MockClient) StartGame(_ context.Context, params model.StartRequest) (*StartResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := &mockSession{
		id:    "game_" + uuid.NewString(),
		day:   1,
		stats: m.start,
		event: m.catalog.IntroEvent(params),
	}
	m.sessions[sess.id] = sess

	return &StartResult{
		GameID: sess.id,
		Day:    sess.day,
		Stats:  sess.stats,
		Event:  sess.event,
	}, nil
}

// AdoptSession seeds the mock store from externally created session state,
// so a game started against the live backend keeps working locally after a
// failure. Adopting an already-known game overwrites its mirror; the caller's
// state is authoritative.
func (m *MockClient) AdoptSession(gameID string, day int, stats model.Stats, event *model.DayEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess := &mockSession{id: gameID, day: day, stats: stats}
	if event != nil {
		sess.event = *event
	}
	m.sessions[gameID] = sess
}

func (m *MockClient) FetchDayEvent(_ context.Context, gameID string, day int) (*model.DayEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("fetch day event %q: %w", gameID, ErrGameNotFound)
	}
	sess.event = m.catalog.PickEvent(day)
	sess.day = day
	ev := sess.event
	return &ev, nil
}

func (m *MockClient) SubmitChoice(_ context.Context, gameID string, day int, choice model.Choice) (*SubmitResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("submit choice %q: %w", gameID, ErrGameNotFound)
	}
	selected := sess.event.ChoiceByID(choice.ID)
	if selected == nil {
		return nil, fmt.Errorf("submit choice %d on day %d: %w", choice.ID, day, ErrInvalidChoice)
	}

	stats, bankrupt := model.ApplyImpact(sess.stats, selected.Impact)
	sess.stats = stats
	sess.bankrupt = sess.bankrupt || bankrupt
	sess.day = day + 1

	return &SubmitResult{
		Day:     sess.day,
		Stats:   sess.stats,
		Applied: *selected,
	}, nil
}

func (m *MockClient) FetchStatus(_ context.Context, gameID string) (*model.Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[gameID]
	if !ok {
		return nil, fmt.Errorf("fetch status %q: %w", gameID, ErrGameNotFound)
	}
	return &model.Status{
		GameID: sess.id,
		Day:    sess.day,
		Health: sess.stats.Health,
		Money:  sess.stats.Money,
		Mood:   sess.stats.Happiness,
		IsOver: model.Terminal(sess.stats, sess.bankrupt),
	}, nil
}
