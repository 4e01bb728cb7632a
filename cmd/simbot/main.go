package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"LifeLedger/internal/config"
	"LifeLedger/internal/notifier"
	"LifeLedger/internal/recorder"
	"LifeLedger/internal/sim"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] LifeLedger simbot starting...")

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

	// Init notifier
	var wn *notifier.WebhookNotifier
	if cfg.Notify.WebhookURL != "" {
		wn = notifier.NewWebhookNotifier(cfg.Notify.WebhookURL)
	} else {
		log.Println("[INFO] no webhook configured, reports go to the log only")
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

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init runner
	runner := sim.NewRunner(ctx, cfg, wn, rec)
	if err := runner.Register(cfg.Schedule.SimCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	runner.Start()
	defer runner.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing playthrough now")
		go runner.RunNow()
	}

	log.Println("[INFO] simbot is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] simbot stopped")
}
