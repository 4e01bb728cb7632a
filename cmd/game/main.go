package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
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
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] LifeLedger starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init event catalog
	var sel catalog.Selector
	if cfg.Game.EventSelection == "random" {
		seed := cfg.Game.EventSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
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

	// Init remote client
	var remote client.GameClient
	if !cfg.API.ForceMock && cfg.API.BaseURL != "" {
		if cfg.API.Contract == "legacy" {
			remote = client.NewLegacyClient(cfg.API.BaseURL, cfg.Timeout())
		} else {
			remote = client.NewImpactClient(cfg.API.BaseURL, cfg.Timeout())
		}
		log.Printf("[INFO] remote backend: %s (%s contract)", cfg.API.BaseURL, remote.Name())
	} else {
		log.Println("[INFO] mock mode: all days served from the local catalog")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctrl := game.NewController(remote, mock, rec, game.Options{
		FinalDay:          cfg.Game.FinalDay,
		MaxTimeAllocation: float64(cfg.Game.MaxTimeAllocation),
	})

	ctx := context.Background()
	in := bufio.NewScanner(os.Stdin)

	params := promptCharacter(in)
	status, err := ctrl.Start(ctx, params)
	if err != nil {
		log.Fatalf("[FATAL] start game: %v", err)
	}
	fmt.Printf("\nGame %s started via %s backend.\n", status.GameID, ctrl.Source())
	fmt.Println(notifier.FormatDailyStatus(status))

	runLoop(ctx, ctrl, in)

	sess, err := ctrl.Session()
	if err != nil {
		log.Fatalf("[FATAL] read session: %v", err)
	}
	completed := !sess.Status().IsOver
	assessment := advisor.Evaluate(&sess, startStats, completed)
	cards := collection.Unlocked(&sess, startStats, completed)

	report := notifier.FormatRunReport(&sess, assessment)
	fmt.Println("\n" + report)
	fmt.Println(notifier.FormatAchievements(cards))

	if cfg.Notify.WebhookURL != "" {
		wn := notifier.NewWebhookNotifier(cfg.Notify.WebhookURL)
		sendCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		if err := wn.SendWithRetry(sendCtx, report, 3); err != nil {
			log.Printf("[ERROR] send run report: %v", err)
		}
	}
}

// promptCharacter collects the character parameters, falling back to defaults
// on empty input.
func promptCharacter(in *bufio.Scanner) model.StartRequest {
	params := model.StartRequest{Age: 25, Gender: "other", CharacterName: "Alex", Work: true}

	fmt.Printf("Character name [%s]: ", params.CharacterName)
	if v, ok := readLine(in); ok && v != "" {
		params.CharacterName = v
	}
	fmt.Printf("Age [%d]: ", params.Age)
	if v, ok := readLine(in); ok && v != "" {
		if age, err := strconv.Atoi(v); err == nil && age > 0 {
			params.Age = age
		}
	}
	fmt.Printf("Gender [%s]: ", params.Gender)
	if v, ok := readLine(in); ok && v != "" {
		params.Gender = v
	}
	fmt.Printf("Employed? [y/n, default y]: ")
	if v, ok := readLine(in); ok && strings.EqualFold(v, "n") {
		params.Work = false
	}
	return params
}

// runLoop drives the day cycle until the run finishes or stdin closes.
func runLoop(ctx context.Context, ctrl *game.Controller, in *bufio.Scanner) {
	for {
		ev, err := ctrl.LoadEvent(ctx)
		if err != nil {
			if errors.Is(err, game.ErrGameFinished) {
				return
			}
			log.Printf("[ERROR] load event: %v", err)
			return
		}

		fmt.Printf("\n--- Day %d ---\n%s\n", ev.Day, ev.Description)
		for _, ch := range ev.Choices {
			fmt.Printf("  %d) %s\n", ch.ID, ch.Text)
		}
		fmt.Println("Commands: <choice number> | actions | act <id> | finance | open <fixed|flexible> <rate> | deposit <amt> | withdraw <amt> | status | quit")

		if !handleCommands(ctx, ctrl, in) {
			return
		}
	}
}

// handleCommands processes input until a choice resolves the day. Returns
// false when the run should stop.
func handleCommands(ctx context.Context, ctrl *game.Controller, in *bufio.Scanner) bool {
	for {
		fmt.Print("> ")
		line, ok := readLine(in)
		if !ok {
			return false
		}
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "q":
			return false
		case "status":
			if st, err := ctrl.Status(); err == nil {
				fmt.Println(notifier.FormatDailyStatus(st))
			}
		case "actions":
			for _, a := range catalog.Actions() {
				fmt.Printf("  %-18s %s ($%.0f, %.1fh) - %s\n", a.ID, a.Name, a.Cost, a.TimeCost, a.Description)
			}
		case "act":
			if len(fields) < 2 {
				fmt.Println("usage: act <id>")
				continue
			}
			doAction(ctrl, fields[1])
		case "finance":
			printFinances(ctrl)
		case "open":
			if len(fields) < 3 {
				fmt.Println("usage: open <fixed|flexible> <annual rate %>")
				continue
			}
			rate, err := strconv.ParseFloat(fields[2], 64)
			if err != nil || rate < 0 {
				fmt.Println("invalid rate")
				continue
			}
			if err := ctrl.OpenSavings(model.AccountType(fields[1]), rate); err != nil {
				fmt.Printf("open savings: %v\n", err)
			} else {
				fmt.Printf("Opened %s savings account at %.2f%%.\n", fields[1], rate)
			}
		case "deposit":
			moveSavings(ctrl, fields, ctrl.DepositSavings, "Deposited")
		case "withdraw":
			moveSavings(ctrl, fields, ctrl.WithdrawSavings, "Withdrew")
		default:
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				fmt.Println("unknown command")
				continue
			}
			done, keep := doChoice(ctx, ctrl, id)
			if done {
				return keep
			}
		}
	}
}

// doChoice submits one choice. The first return reports whether the day
// resolved; the second whether the loop should continue.
func doChoice(ctx context.Context, ctrl *game.Controller, id int) (resolved, keepGoing bool) {
	outcome, err := ctrl.ChooseOption(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrInvalidChoice) {
			fmt.Println("no such choice")
			return false, true
		}
		log.Printf("[ERROR] choose option: %v", err)
		return true, false
	}
	fmt.Printf("You chose: %s\n", outcome.Applied.Text)
	for stat, delta := range outcome.Changes {
		fmt.Printf("  %s %+.0f\n", stat, delta)
	}
	if outcome.Interest != 0 {
		fmt.Printf("  savings interest +%.2f\n", outcome.Interest)
	}
	if outcome.Source == model.SourceMock && ctrl.Source() == model.SourceMock {
		fmt.Println("(served offline from the local catalog)")
	}
	if outcome.Finished {
		return true, false
	}
	fmt.Println(notifier.FormatDailyStatus(outcome.Status))
	return true, true
}

func doAction(ctrl *game.Controller, id string) {
	item := catalog.ActionByID(id)
	if item == nil {
		fmt.Println("no such action")
		return
	}
	outcome, err := ctrl.PerformAction(*item)
	if err != nil {
		fmt.Printf("perform action: %v\n", err)
		return
	}
	fmt.Printf("Did: %s (%.1fh left today)\n", outcome.Action.Name, outcome.TimeLeft)
	for stat, delta := range outcome.Changes {
		fmt.Printf("  %s %+.0f\n", stat, delta)
	}
}

func printFinances(ctrl *game.Controller) {
	sess, err := ctrl.Session()
	if err != nil {
		fmt.Printf("finances: %v\n", err)
		return
	}
	fmt.Printf("Cash: $%.2f\n", sess.Stats.Money)
	if acct := sess.Finances.Savings; acct != nil {
		fmt.Printf("Savings (%s, %.2f%%): $%.2f, withdrawals used %d\n",
			acct.Type, acct.AnnualRate, acct.Balance, acct.Withdrawals)
	} else {
		fmt.Println("No savings account.")
	}
	for _, inc := range sess.Finances.Incomes {
		fmt.Printf("  + $%.2f %s\n", inc.Amount, inc.Source)
	}
	for _, exp := range sess.Finances.Expenses {
		fmt.Printf("  - $%.2f %s\n", exp.Amount, exp.Category)
	}
}

func moveSavings(ctrl *game.Controller, fields []string, op func(float64) error, verb string) {
	if len(fields) < 2 {
		fmt.Printf("usage: %s <amount>\n", fields[0])
		return
	}
	amt, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || amt <= 0 {
		fmt.Println("invalid amount")
		return
	}
	if err := op(amt); err != nil {
		fmt.Printf("%s: %v\n", fields[0], err)
		return
	}
	fmt.Printf("%s $%.2f.\n", verb, amt)
}

func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
