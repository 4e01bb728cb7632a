package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	API struct {
		BaseURL   string `yaml:"base_url"`
		TimeoutMS int    `yaml:"timeout_ms"`
		ForceMock bool   `yaml:"force_mock"`
		Contract  string `yaml:"contract"` // "impact" or "legacy"
	} `yaml:"api"`
	Game struct {
		FinalDay          int     `yaml:"final_day"`
		MaxTimeAllocation int     `yaml:"max_time_allocation"`
		StartHealth       int     `yaml:"start_health"`
		StartMood         int     `yaml:"start_mood"`
		StartMoney        float64 `yaml:"start_money"`
		EventSelection    string  `yaml:"event_selection"` // "daily" or "random"
		EventSeed         int64   `yaml:"event_seed"`
	} `yaml:"game"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Notify struct {
		WebhookURL string `yaml:"webhook_url"`
	} `yaml:"notify"`
	Schedule struct {
		SimCron string `yaml:"sim_cron"`
	} `yaml:"schedule"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LIFELEDGER_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("LIFELEDGER_FORCE_MOCK"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.API.ForceMock = b
		}
	}
	if v := os.Getenv("LIFELEDGER_CONTRACT"); v != "" {
		cfg.API.Contract = v
	}
	if v := os.Getenv("LIFELEDGER_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LIFELEDGER_WEBHOOK_URL"); v != "" {
		cfg.Notify.WebhookURL = v
	}
	if v := os.Getenv("LIFELEDGER_EVENT_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.EventSeed = seed
		}
	}

	// Defaults
	if cfg.API.TimeoutMS == 0 {
		cfg.API.TimeoutMS = 3000
	}
	if cfg.API.Contract == "" {
		cfg.API.Contract = "impact"
	}
	if cfg.Game.FinalDay == 0 {
		cfg.Game.FinalDay = 10
	}
	if cfg.Game.MaxTimeAllocation == 0 {
		cfg.Game.MaxTimeAllocation = 8
	}
	if cfg.Game.StartHealth == 0 {
		cfg.Game.StartHealth = 70
	}
	if cfg.Game.StartMood == 0 {
		cfg.Game.StartMood = 70
	}
	if cfg.Game.StartMoney == 0 {
		cfg.Game.StartMoney = 400
	}
	if cfg.Game.EventSelection == "" {
		cfg.Game.EventSelection = "daily"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/lifeledger.db"
	}
	if cfg.Schedule.SimCron == "" {
		cfg.Schedule.SimCron = "0 0 7 * * *"
	}

	return cfg, nil
}

// Timeout returns the API timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutMS) * time.Millisecond
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if !c.API.ForceMock && c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required unless api.force_mock is set")
	}
	if c.API.Contract != "impact" && c.API.Contract != "legacy" {
		return fmt.Errorf("api.contract must be \"impact\" or \"legacy\", got %q", c.API.Contract)
	}
	if c.Game.FinalDay <= 0 {
		return fmt.Errorf("game.final_day must be positive")
	}
	if c.Game.MaxTimeAllocation <= 0 {
		return fmt.Errorf("game.max_time_allocation must be positive")
	}
	if c.Game.EventSelection != "daily" && c.Game.EventSelection != "random" {
		return fmt.Errorf("game.event_selection must be \"daily\" or \"random\", got %q", c.Game.EventSelection)
	}
	return nil
}
