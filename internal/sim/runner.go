package sim

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"LifeLedger/internal/advisor"
	"LifeLedger/internal/catalog"
	"LifeLedger/internal/client"
	"LifeLedger/internal/collection"
	"LifeLedger/internal/config"
	"LifeLedger/internal/game"
	"LifeLedger/internal/model"
	"LifeLedger/internal/notifier"
	"LifeLedger/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Runner schedules unattended playthroughs and reports their outcomes.
type Runner struct {
	Cron     *cron.Cron
	Notifier *notifier.WebhookNotifier // nil disables notifications
	Recorder recorder.Recorder
	Cfg      *config.Config
	Ctx      context.Context
}

// NewRunner creates a runner.
func NewRunner(ctx context.Context, cfg *config.Config, wn *notifier.WebhookNotifier, rec recorder.Recorder) *Runner {
	return &Runner{
		Cron:     cron.New(cron.WithSeconds()),
		Notifier: wn,
		Recorder: rec,
		Cfg:      cfg,
		Ctx:      ctx,
	}
}

// Register registers the simulation cron task.
func (r *Runner) Register(simCron string) error {
	if _, err := r.Cron.AddFunc(simCron, r.simTask); err != nil {
		return fmt.Errorf("register sim task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Runner) Start() {
	r.Cron.Start()
	log.Println("[INFO] sim scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (r *Runner) Stop() {
	r.Cron.Stop()
	log.Println("[INFO] sim scheduler stopped")
}

// RunNow executes one playthrough immediately (for manual trigger / RUN_ON_START).
func (r *Runner) RunNow() {
	r.simTask()
}

func (r *Runner) simTask() {
	log.Println("[INFO] running scheduled playthrough")

	cfg := r.Cfg
	seed := cfg.Game.EventSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var sel catalog.Selector
	if cfg.Game.EventSelection == "random" {
		sel = catalog.NewRandomSelector(seed)
	} else {
		sel = catalog.DailySelector{}
	}
	cat := catalog.New(sel)

	startStats := model.Stats{
		Health:    cfg.Game.StartHealth,
		Happiness: cfg.Game.StartMood,
		Money:     cfg.Game.StartMoney,
		FreeTime:  float64(cfg.Game.MaxTimeAllocation),
	}
	mock := client.NewMockClient(cat, startStats)

	var remote client.GameClient
	if !cfg.API.ForceMock && cfg.API.BaseURL != "" {
		if cfg.API.Contract == "legacy" {
			remote = client.NewLegacyClient(cfg.API.BaseURL, cfg.Timeout())
		} else {
			remote = client.NewImpactClient(cfg.API.BaseURL, cfg.Timeout())
		}
	}

	ctrl := game.NewController(remote, mock, r.Recorder, game.Options{
		FinalDay:          cfg.Game.FinalDay,
		MaxTimeAllocation: float64(cfg.Game.MaxTimeAllocation),
	})

	params := model.StartRequest{Age: 25, Gender: "other", CharacterName: "Simmy", Work: true}
	status, err := ctrl.Start(r.Ctx, params)
	if err != nil {
		log.Printf("[ERROR] sim start: %v", err)
		r.trySend(fmt.Sprintf("Scheduled playthrough failed to start: %v", err))
		return
	}
	log.Printf("[INFO] sim game %s started via %s", status.GameID, ctrl.Source())

	// Park a third of the cash in savings so interest and the ledger get
	// exercised every run.
	if err := ctrl.OpenSavings(model.AccountFlexible, 3.65); err != nil {
		log.Printf("[WARN] sim open savings: %v", err)
	} else if err := ctrl.DepositSavings(startStats.Money / 3); err != nil {
		log.Printf("[WARN] sim deposit: %v", err)
	}

	for {
		ev, err := ctrl.LoadEvent(r.Ctx)
		if err != nil {
			if errors.Is(err, game.ErrGameFinished) {
				break
			}
			log.Printf("[ERROR] sim load event: %v", err)
			return
		}
		outcome, err := ctrl.ChooseOption(r.Ctx, pickChoice(ev))
		if err != nil {
			log.Printf("[ERROR] sim choose: %v", err)
			return
		}
		log.Printf("[INFO] sim day %d: %q -> %s", ev.Day, outcome.Applied.Text,
			notifier.FormatDailyStatus(outcome.Status))
		if outcome.Finished {
			break
		}
	}

	sess, err := ctrl.Session()
	if err != nil {
		log.Printf("[ERROR] sim session: %v", err)
		return
	}
	completed := !sess.Status().IsOver
	assessment := advisor.Evaluate(&sess, startStats, completed)
	cards := collection.Unlocked(&sess, startStats, completed)

	report := notifier.FormatRunReport(&sess, assessment)
	report += "\n" + notifier.FormatAchievements(cards)
	r.trySend(report)
}

// pickChoice greedily takes the option with the best combined stat payoff.
func pickChoice(ev *model.DayEvent) int {
	best := ev.Choices[0].ID
	bestScore := choiceScore(ev.Choices[0])
	for _, ch := range ev.Choices[1:] {
		if s := choiceScore(ch); s > bestScore {
			best, bestScore = ch.ID, s
		}
	}
	return best
}

func choiceScore(ch model.Choice) float64 {
	imp := ch.Impact
	return float64(imp.Health+imp.Happiness-imp.Stress) + imp.Money/10
}

func (r *Runner) trySend(text string) {
	if r.Notifier == nil {
		return
	}
	if err := r.Notifier.SendWithRetry(r.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
