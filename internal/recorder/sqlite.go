package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists play history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while a run is being written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS day_snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			game_id        TEXT NOT NULL,
			day            INTEGER NOT NULL,
			health         INTEGER,
			happiness      INTEGER,
			stress         INTEGER,
			reputation     INTEGER,
			education      INTEGER,
			money          REAL,
			weekly_income  REAL,
			weekly_expense REAL,
			free_time      REAL,
			source         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_day_game ON day_snapshots(game_id, day)`,

		`CREATE TABLE IF NOT EXISTS choice_events (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			game_id      TEXT NOT NULL,
			day          INTEGER NOT NULL,
			choice_id    INTEGER,
			choice_text  TEXT,
			health_delta INTEGER,
			mood_delta   INTEGER,
			money_delta  REAL,
			source       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_choice_game ON choice_events(game_id, day)`,

		`CREATE TABLE IF NOT EXISTS action_events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			game_id     TEXT NOT NULL,
			day         INTEGER NOT NULL,
			action_id   TEXT,
			name        TEXT,
			time_cost   REAL,
			money_delta REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_action_game ON action_events(game_id, day)`,

		`CREATE TABLE IF NOT EXISTS finance_events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			game_id   TEXT NOT NULL,
			day       INTEGER NOT NULL,
			kind      TEXT,
			amount    REAL,
			balance   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_finance_game ON finance_events(game_id, day)`,

		`CREATE TABLE IF NOT EXISTS run_summaries (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			game_id   TEXT NOT NULL,
			final_day INTEGER,
			health    INTEGER,
			happiness INTEGER,
			money     REAL,
			grade     TEXT,
			source    TEXT,
			completed INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_game ON run_summaries(game_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordDay(snap *DaySnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := snap.Stats
	_, err := r.db.Exec(`INSERT INTO day_snapshots
		(timestamp, game_id, day, health, happiness, stress, reputation, education,
		 money, weekly_income, weekly_expense, free_time, source)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.GameID, snap.Day,
		st.Health, st.Happiness, st.Stress, st.Reputation, st.Education,
		st.Money, st.WeeklyIncome, st.WeeklyExpense, st.FreeTime, snap.Source,
	)
	return err
}

func (r *SQLiteRecorder) RecordChoice(evt *ChoiceEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO choice_events
		(timestamp, game_id, day, choice_id, choice_text, health_delta, mood_delta, money_delta, source)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.GameID, evt.Day, evt.ChoiceID, evt.ChoiceText,
		evt.HealthDelta, evt.MoodDelta, evt.MoneyDelta, evt.Source,
	)
	return err
}

func (r *SQLiteRecorder) RecordAction(evt *ActionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO action_events
		(timestamp, game_id, day, action_id, name, time_cost, money_delta)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.GameID, evt.Day, evt.ActionID, evt.Name,
		evt.TimeCost, evt.MoneyDelta,
	)
	return err
}

func (r *SQLiteRecorder) RecordFinance(evt *FinanceEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO finance_events
		(timestamp, game_id, day, kind, amount, balance)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.GameID, evt.Day, evt.Kind, evt.Amount, evt.Balance,
	)
	return err
}

func (r *SQLiteRecorder) RecordRun(sum *RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	completed := 0
	if sum.Completed {
		completed = 1
	}
	_, err := r.db.Exec(`INSERT INTO run_summaries
		(timestamp, game_id, final_day, health, happiness, money, grade, source, completed)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), sum.GameID, sum.FinalDay,
		sum.Stats.Health, sum.Stats.Happiness, sum.Stats.Money,
		sum.Grade, sum.Source, completed,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
