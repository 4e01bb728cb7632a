package game

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LifeLedger/internal/catalog"
	"LifeLedger/internal/client"
	"LifeLedger/internal/model"
)

func testStart() model.Stats {
	return model.Stats{Health: 70, Happiness: 70, Money: 400, FreeTime: 8}
}

func newMockOnly(t *testing.T, opts Options) (*Controller, *client.MockClient) {
	t.Helper()
	mock := client.NewMockClient(catalog.New(catalog.DailySelector{}), testStart())
	return NewController(nil, mock, nil, opts), mock
}

func startGame(t *testing.T, ctrl *Controller) model.Status {
	t.Helper()
	st, err := ctrl.Start(context.Background(), model.StartRequest{CharacterName: "Mika", Age: 30, Work: true})
	require.NoError(t, err)
	return st
}

func TestController_StartDefaults(t *testing.T) {
	ctrl, _ := newMockOnly(t, Options{})
	ctx := context.Background()

	_, err := ctrl.Status()
	assert.ErrorIs(t, err, ErrNotStarted)
	_, err = ctrl.ChooseOption(ctx, 1)
	assert.ErrorIs(t, err, ErrNotStarted)

	st := startGame(t, ctrl)
	assert.Equal(t, 1, st.Day)
	assert.Equal(t, 70, st.Health)
	assert.Equal(t, 400.0, st.Money)
	assert.Equal(t, 70, st.Mood)
	assert.False(t, st.IsOver)
	assert.Equal(t, model.SourceMock, ctrl.Source())
	assert.Equal(t, StateAwaitingChoice, ctrl.State())

	sess, err := ctrl.Session()
	require.NoError(t, err)
	assert.Equal(t, 8.0, sess.TimeAllocation)
	assert.Equal(t, 8.0, sess.MaxTimeAllocation)

	_, err = ctrl.Start(ctx, model.StartRequest{})
	assert.ErrorIs(t, err, ErrAlreadyStarted)
}

func TestController_ChooseOptionAdvancesDay(t *testing.T) {
	ctrl, _ := newMockOnly(t, Options{})
	ctx := context.Background()
	startGame(t, ctrl)

	// Burn some hours first so the reset is observable.
	act := catalog.ActionByID("edu-group-study")
	require.NotNil(t, act)
	_, err := ctrl.PerformAction(*act)
	require.NoError(t, err)
	sess, _ := ctrl.Session()
	assert.Equal(t, 6.0, sess.TimeAllocation)

	ev, err := ctrl.LoadEvent(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, ev.Choices)

	outcome, err := ctrl.ChooseOption(ctx, ev.Choices[0].ID)
	require.NoError(t, err)

	assert.Equal(t, 2, outcome.Status.Day)
	assert.False(t, outcome.Finished)
	assert.Equal(t, ev.Choices[0].ID, outcome.Applied.ID)

	sess, _ = ctrl.Session()
	assert.Equal(t, 2, sess.Day)
	assert.Equal(t, sess.MaxTimeAllocation, sess.TimeAllocation, "time allocation resets on day transition")
	assert.Nil(t, sess.CurrentEvent, "the resolved event is cleared")

	_, err = ctrl.ChooseOption(ctx, 1)
	assert.ErrorIs(t, err, ErrNoEvent, "no event loaded for the new day yet")

	ev2, err := ctrl.LoadEvent(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, ev2.Day)
}

func TestController_InvalidChoice(t *testing.T) {
	ctrl, _ := newMockOnly(t, Options{})
	ctx := context.Background()
	startGame(t, ctrl)

	_, err := ctrl.ChooseOption(ctx, 99)
	assert.ErrorIs(t, err, client.ErrInvalidChoice)
	assert.Equal(t, StateAwaitingChoice, ctrl.State(), "a rejected choice leaves the day open")
}

func TestController_FinishesAfterFinalDay(t *testing.T) {
	ctrl, _ := newMockOnly(t, Options{FinalDay: 2})
	ctx := context.Background()
	startGame(t, ctrl)

	for day := 1; day <= 2; day++ {
		ev, err := ctrl.LoadEvent(ctx)
		require.NoError(t, err, "day %d", day)
		outcome, err := ctrl.ChooseOption(ctx, ev.Choices[0].ID)
		require.NoError(t, err, "day %d", day)
		if day == 2 {
			assert.True(t, outcome.Finished, "run finishes past the final day")
		}
	}

	assert.Equal(t, StateFinished, ctrl.State())
	_, err := ctrl.LoadEvent(ctx)
	assert.ErrorIs(t, err, ErrGameFinished)
	_, err = ctrl.ChooseOption(ctx, 1)
	assert.ErrorIs(t, err, ErrGameFinished)
	_, err = ctrl.PerformAction(model.ActionItem{ID: "x", Name: "x"})
	assert.ErrorIs(t, err, ErrGameFinished)
}

// gatedClient blocks SubmitChoice until released, to hold the controller in
// its resolving window.
type gatedClient struct {
	*client.MockClient
	gate chan struct{}
}

func (g *gatedClient) SubmitChoice(ctx context.Context, gameID string, day int, choice model.Choice) (*client.SubmitResult, error) {
	<-g.gate
	return g.MockClient.SubmitChoice(ctx, gameID, day, choice)
}

func TestController_ConcurrentChoiceAppliesOnce(t *testing.T) {
	gated := &gatedClient{
		MockClient: client.NewMockClient(catalog.New(catalog.DailySelector{}), testStart()),
		gate:       make(chan struct{}),
	}
	ctrl := NewController(nil, gated, nil, Options{})
	ctx := context.Background()

	startGame(t, ctrl)

	ev, err := ctrl.LoadEvent(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := ctrl.ChooseOption(ctx, ev.Choices[0].ID)
		done <- err
	}()

	require.Eventually(t, func() bool {
		return ctrl.State() == StateResolving
	}, time.Second, time.Millisecond)

	_, err = ctrl.ChooseOption(ctx, ev.Choices[0].ID)
	assert.ErrorIs(t, err, ErrChoicePending, "a second submission during resolution is rejected")

	close(gated.gate)
	require.NoError(t, <-done)

	sess, _ := ctrl.Session()
	assert.Equal(t, 2, sess.Day, "the choice applied exactly once")
}

func TestController_RemoteFallbackMidRun(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) > 1 {
			http.Error(w, "gone", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"game_state": map[string]interface{}{
				"game_id": "game_live",
				"day":     1,
				"stats":   map[string]interface{}{"health": 70, "happiness": 70, "money": 400, "free_time": 8},
			},
			"event": map[string]interface{}{
				"event_id":    1,
				"description": "The servers hum along, for now.",
				"options": []map[string]interface{}{
					{"description": "Save your work", "impact": map[string]interface{}{"happiness": 5}},
					{"description": "Risk it", "impact": map[string]interface{}{"money": 50, "stress": 10}},
				},
			},
		})
	}))
	defer srv.Close()

	remote := client.NewImpactClient(srv.URL, time.Second)
	mock := client.NewMockClient(catalog.New(catalog.DailySelector{}), testStart())
	ctrl := NewController(remote, mock, nil, Options{})
	ctx := context.Background()

	startGame(t, ctrl)
	assert.Equal(t, model.SourceAPI, ctrl.Source())
	assert.Equal(t, "game_live", mustSession(t, ctrl).GameID)

	// The backend is now failing; the choice must still resolve locally
	// against the remote-issued event and session state.
	outcome, err := ctrl.ChooseOption(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.SourceMock, outcome.Source)
	assert.Equal(t, model.SourceMock, ctrl.Source())
	assert.Equal(t, 2, outcome.Status.Day)
	assert.Equal(t, 450.0, outcome.Status.Money, "the remote event's impact applied to the remote stats")
}

func TestController_RemoteFailureOnStart(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	srv.Close() // remote is down from the first request

	remote := client.NewImpactClient(srv.URL, time.Second)
	mock := client.NewMockClient(catalog.New(catalog.DailySelector{}), testStart())
	ctrl := NewController(remote, mock, nil, Options{})

	st := startGame(t, ctrl)
	assert.Equal(t, model.SourceMock, ctrl.Source())
	assert.Equal(t, 1, st.Day)
	assert.Equal(t, 70, st.Health)
	assert.Equal(t, 400.0, st.Money)

	sess := mustSession(t, ctrl)
	require.NotNil(t, sess.CurrentEvent)
	assert.NotEmpty(t, sess.CurrentEvent.Choices, "the fallback session is fully populated")
}

func TestController_ForceMockWhenNoRemote(t *testing.T) {
	ctrl, _ := newMockOnly(t, Options{})
	startGame(t, ctrl)
	assert.Equal(t, model.SourceMock, ctrl.Source())
}

func TestController_PerformActionValidation(t *testing.T) {
	ctrl, _ := newMockOnly(t, Options{})
	startGame(t, ctrl)

	before := mustSession(t, ctrl)

	_, err := ctrl.PerformAction(model.ActionItem{
		ID: "marathon", Name: "Marathon", TimeCost: 99,
	})
	assert.ErrorIs(t, err, ErrInsufficientTime)

	_, err = ctrl.PerformAction(model.ActionItem{
		ID: "yacht", Name: "Buy a Yacht", Cost: 100000, TimeCost: 1,
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	after := mustSession(t, ctrl)
	assert.Equal(t, before.Stats, after.Stats, "rejected actions mutate nothing")
	assert.Equal(t, before.TimeAllocation, after.TimeAllocation)
}

func TestController_PerformActionAppliesAndLogs(t *testing.T) {
	ctrl, _ := newMockOnly(t, Options{})
	startGame(t, ctrl)

	act := catalog.ActionByID("edu-hire-tutor") // Money -30, Happiness +5, 1.5h, cost 30
	require.NotNil(t, act)

	outcome, err := ctrl.PerformAction(*act)
	require.NoError(t, err)
	assert.Equal(t, 370.0, outcome.Status.Money)
	assert.Equal(t, 6.5, outcome.TimeLeft)

	sess := mustSession(t, ctrl)
	require.Len(t, sess.Finances.Expenses, 1, "the spend lands in the ledger")
	assert.Equal(t, 30.0, sess.Finances.Expenses[0].Amount)
}

func TestController_SavingsLifecycle(t *testing.T) {
	ctrl, _ := newMockOnly(t, Options{})
	ctx := context.Background()
	startGame(t, ctrl)

	require.NoError(t, ctrl.OpenSavings(model.AccountFlexible, 3.65))
	require.NoError(t, ctrl.DepositSavings(100))

	sess := mustSession(t, ctrl)
	assert.Equal(t, 300.0, sess.Stats.Money, "deposit moves cash into savings")
	assert.Equal(t, 100.0, sess.Finances.Savings.Balance)

	err := ctrl.DepositSavings(10000)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	ev, err := ctrl.LoadEvent(ctx)
	require.NoError(t, err)
	outcome, err := ctrl.ChooseOption(ctx, ev.Choices[0].ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.65, outcome.Interest, 1e-9, "interest accrues on the day transition")

	sess = mustSession(t, ctrl)
	assert.InDelta(t, 103.65, sess.Finances.Savings.Balance, 1e-9)

	require.NoError(t, ctrl.WithdrawSavings(50))
	sess = mustSession(t, ctrl)
	assert.InDelta(t, 53.65, sess.Finances.Savings.Balance, 1e-9)
}

func mustSession(t *testing.T, ctrl *Controller) model.GameSession {
	t.Helper()
	sess, err := ctrl.Session()
	require.NoError(t, err)
	return sess
}
