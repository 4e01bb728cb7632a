package game

import (
	"context"
	"fmt"
	"log"
	"sync"

	"LifeLedger/internal/client"
	"LifeLedger/internal/finance"
	"LifeLedger/internal/model"
	"LifeLedger/internal/recorder"
)

// FallbackClient is a GameClient that can adopt externally created session
// state before serving calls locally. The mock client implements it.
type FallbackClient interface {
	client.GameClient
	AdoptSession(gameID string, day int, stats model.Stats, event *model.DayEvent)
}

// Defaults applied when Options fields are zero.
const (
	DefaultFinalDay          = 10
	DefaultMaxTimeAllocation = 8
)

// Options tunes a controller.
type Options struct {
	FinalDay          int
	MaxTimeAllocation float64
}

// Controller drives one game session across its days. It exclusively owns
// and mutates the session. Remote failures are absorbed by falling back to
// the local client; the serving source is tracked per call so a front end
// can surface an offline/demo-mode notice.
type Controller struct {
	remote   client.GameClient // nil in force-mock mode
	fallback FallbackClient
	rec      recorder.Recorder
	opts     Options

	mu    sync.Mutex
	state State
	sess  *model.GameSession
}

// NewController wires a controller. remote may be nil to force mock mode;
// rec may be nil for no recording.
func NewController(remote client.GameClient, fallback FallbackClient, rec recorder.Recorder, opts Options) *Controller {
	if opts.FinalDay <= 0 {
		opts.FinalDay = DefaultFinalDay
	}
	if opts.MaxTimeAllocation <= 0 {
		opts.MaxTimeAllocation = DefaultMaxTimeAllocation
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Controller{
		remote:   remote,
		fallback: fallback,
		rec:      rec,
		opts:     opts,
		state:    StateUninitialized,
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Source reports which backend served the last call.
func (c *Controller) Source() model.Source {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil {
		return ""
	}
	return c.sess.Source
}

// Status returns the condensed status of the session.
func (c *Controller) Status() (model.Status, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil {
		return model.Status{}, ErrNotStarted
	}
	return c.sess.Status(), nil
}

// Session returns a copy of the session for read-only consumption.
func (c *Controller) Session() (model.GameSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil {
		return model.GameSession{}, ErrNotStarted
	}
	return *c.sess, nil
}

// CurrentEvent returns a copy of the loaded day event, or nil.
func (c *Controller) CurrentEvent() *model.DayEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sess == nil || c.sess.CurrentEvent == nil {
		return nil
	}
	ev := *c.sess.CurrentEvent
	return &ev
}

// Start creates the game session, remote first, mock on failure. On success
// the session holds day 1, the initial stats and the first event.
func (c *Controller) Start(ctx context.Context, params model.StartRequest) (model.Status, error) {
	c.mu.Lock()
	if c.state != StateUninitialized {
		c.mu.Unlock()
		return model.Status{}, ErrAlreadyStarted
	}
	c.state = StateInitializing
	c.mu.Unlock()

	source := model.SourceAPI
	var res *client.StartResult
	if c.remote != nil {
		r, err := c.remote.StartGame(ctx, params)
		if err != nil {
			log.Printf("[WARN] remote start failed, using mock: %v", err)
		} else {
			res = r
		}
	}
	if res == nil {
		source = model.SourceMock
		r, err := c.fallback.StartGame(ctx, params)
		if err != nil {
			c.mu.Lock()
			c.state = StateUninitialized
			c.mu.Unlock()
			return model.Status{}, fmt.Errorf("mock start: %w", err)
		}
		res = r
	}

	maxTime := res.Stats.FreeTime
	if maxTime <= 0 {
		maxTime = c.opts.MaxTimeAllocation
	}

	c.mu.Lock()
	event := res.Event
	c.sess = &model.GameSession{
		GameID:            res.GameID,
		Day:               res.Day,
		Stats:             res.Stats,
		CurrentEvent:      &event,
		Params:            params,
		TimeAllocation:    maxTime,
		MaxTimeAllocation: maxTime,
		Source:            source,
	}
	c.state = StateAwaitingChoice
	status := c.sess.Status()
	snap := &recorder.DaySnapshot{
		GameID: res.GameID,
		Day:    res.Day,
		Stats:  res.Stats,
		Source: string(source),
	}
	c.mu.Unlock()

	if err := c.rec.RecordDay(snap); err != nil {
		log.Printf("[ERROR] record day: %v", err)
	}
	return status, nil
}

// LoadEvent ensures a day event is loaded for the current day, fetching from
// the remote backend when its contract has a day-event endpoint and falling
// back to the catalog otherwise. Past the final day it transitions to
// Finished and returns ErrGameFinished.
func (c *Controller) LoadEvent(ctx context.Context) (*model.DayEvent, error) {
	c.mu.Lock()
	if c.sess == nil {
		c.mu.Unlock()
		return nil, ErrNotStarted
	}
	if c.state == StateFinished {
		c.mu.Unlock()
		return nil, ErrGameFinished
	}
	if c.state != StateAwaitingChoice {
		c.mu.Unlock()
		return nil, ErrChoicePending
	}
	if c.sess.Day > c.opts.FinalDay {
		c.finishLocked(true)
		c.mu.Unlock()
		return nil, ErrGameFinished
	}
	if c.sess.CurrentEvent != nil && c.sess.CurrentEvent.Day == c.sess.Day {
		ev := *c.sess.CurrentEvent
		c.mu.Unlock()
		return &ev, nil
	}
	gameID, day, stats := c.sess.GameID, c.sess.Day, c.sess.Stats
	c.mu.Unlock()

	source := model.SourceAPI
	var ev *model.DayEvent
	if c.remote != nil && c.remote.Supports(client.OpFetchDayEvent) {
		e, err := c.remote.FetchDayEvent(ctx, gameID, day)
		if err != nil {
			log.Printf("[WARN] remote day event failed, using mock: %v", err)
		} else {
			ev = e
		}
	}
	if ev == nil {
		source = model.SourceMock
		c.fallback.AdoptSession(gameID, day, stats, nil)
		e, err := c.fallback.FetchDayEvent(ctx, gameID, day)
		if err != nil {
			return nil, fmt.Errorf("load event: %w", err)
		}
		ev = e
	}

	c.mu.Lock()
	event := *ev
	c.sess.CurrentEvent = &event
	c.sess.Source = source
	c.mu.Unlock()

	out := *ev
	return &out, nil
}

// ChoiceOutcome reports one resolved choice: the echo of what was applied,
// per-stat changes (new minus old), interest accrued on the day transition,
// and the post-transition status.
type ChoiceOutcome struct {
	Applied  model.Choice
	Changes  map[string]float64
	Interest float64
	Status   model.Status
	Source   model.Source
	Finished bool
}

// ChooseOption submits the identified choice of the current event. Resolving
// is exclusive: a concurrent call fails with ErrChoicePending and no deltas
// are applied twice. On success the day advances by one, savings interest
// accrues, and the time allocation resets.
func (c *Controller) ChooseOption(ctx context.Context, choiceID int) (*ChoiceOutcome, error) {
	c.mu.Lock()
	switch {
	case c.sess == nil:
		c.mu.Unlock()
		return nil, ErrNotStarted
	case c.state == StateFinished:
		c.mu.Unlock()
		return nil, ErrGameFinished
	case c.state == StateResolving:
		c.mu.Unlock()
		return nil, ErrChoicePending
	case c.state != StateAwaitingChoice:
		c.mu.Unlock()
		return nil, ErrNotStarted
	}
	if c.sess.CurrentEvent == nil {
		c.mu.Unlock()
		return nil, ErrNoEvent
	}
	choice := c.sess.CurrentEvent.ChoiceByID(choiceID)
	if choice == nil {
		c.mu.Unlock()
		return nil, fmt.Errorf("choose option %d: %w", choiceID, client.ErrInvalidChoice)
	}
	chosen := *choice
	gameID, day := c.sess.GameID, c.sess.Day
	oldStats := c.sess.Stats
	oldStatus := c.sess.Status()
	event := *c.sess.CurrentEvent
	c.state = StateResolving
	c.mu.Unlock()

	source := model.SourceAPI
	var res *client.SubmitResult
	if c.remote != nil && c.remote.Supports(client.OpSubmitChoice) {
		r, err := c.remote.SubmitChoice(ctx, gameID, day, chosen)
		if err != nil {
			log.Printf("[WARN] remote choice failed, using mock: %v", err)
		} else {
			res = r
		}
	}
	if res == nil {
		source = model.SourceMock
		c.fallback.AdoptSession(gameID, day, oldStats, &event)
		r, err := c.fallback.SubmitChoice(ctx, gameID, day, chosen)
		if err != nil {
			c.mu.Lock()
			c.state = StateAwaitingChoice
			c.mu.Unlock()
			return nil, fmt.Errorf("submit choice: %w", err)
		}
		res = r
	}

	// Bankruptcy is only visible on the transient raw sum before the backend
	// floors money at zero, so recompute it from the applied impact.
	bankrupt := oldStats.Money+res.Applied.Impact.Money < 0

	c.mu.Lock()
	c.sess.Stats = res.Stats
	c.sess.Bankrupt = c.sess.Bankrupt || bankrupt
	c.sess.Source = source
	c.sess.CurrentEvent = nil

	interest := finance.AccrueDailyInterest(c.sess.Finances.Savings)

	c.sess.Day = day + 1
	c.sess.TimeAllocation = c.sess.MaxTimeAllocation

	newStatus := c.sess.Status()
	finished := c.sess.Day > c.opts.FinalDay || newStatus.IsOver
	if finished {
		c.finishLocked(!newStatus.IsOver)
	} else {
		c.state = StateAwaitingChoice
	}
	stats := c.sess.Stats
	var savingsBalance float64
	if c.sess.Finances.Savings != nil {
		savingsBalance = c.sess.Finances.Savings.Balance
	}
	c.mu.Unlock()

	changes := statusChanges(oldStatus, newStatus)
	outcome := &ChoiceOutcome{
		Applied:  res.Applied,
		Changes:  changes,
		Interest: interest,
		Status:   newStatus,
		Source:   source,
		Finished: finished,
	}

	if err := c.rec.RecordChoice(&recorder.ChoiceEvent{
		GameID:      gameID,
		Day:         day,
		ChoiceID:    res.Applied.ID,
		ChoiceText:  res.Applied.Text,
		HealthDelta: newStatus.Health - oldStatus.Health,
		MoodDelta:   newStatus.Mood - oldStatus.Mood,
		MoneyDelta:  newStatus.Money - oldStatus.Money,
		Source:      string(source),
	}); err != nil {
		log.Printf("[ERROR] record choice: %v", err)
	}
	if interest != 0 {
		if err := c.rec.RecordFinance(&recorder.FinanceEvent{
			GameID: gameID, Day: day, Kind: "INTEREST",
			Amount: interest, Balance: savingsBalance,
		}); err != nil {
			log.Printf("[ERROR] record finance: %v", err)
		}
	}
	if !finished {
		if err := c.rec.RecordDay(&recorder.DaySnapshot{
			GameID: gameID, Day: day + 1, Stats: stats, Source: string(source),
		}); err != nil {
			log.Printf("[ERROR] record day: %v", err)
		}
	}

	return outcome, nil
}

// finishLocked marks the run finished and records the summary. Caller holds
// the mutex.
func (c *Controller) finishLocked(completed bool) {
	if c.state == StateFinished {
		return
	}
	c.state = StateFinished
	sum := &recorder.RunSummary{
		GameID:    c.sess.GameID,
		FinalDay:  c.sess.Day,
		Stats:     c.sess.Stats,
		Source:    string(c.sess.Source),
		Completed: completed,
	}
	if err := c.rec.RecordRun(sum); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}

// statusChanges computes the per-stat difference map for observability.
func statusChanges(old, new model.Status) map[string]float64 {
	changes := make(map[string]float64)
	if d := new.Health - old.Health; d != 0 {
		changes["health"] = float64(d)
	}
	if d := new.Mood - old.Mood; d != 0 {
		changes["mood"] = float64(d)
	}
	if d := new.Money - old.Money; d != 0 {
		changes["money"] = d
	}
	return changes
}
