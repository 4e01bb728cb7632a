package recorder

import (
	"path/filepath"
	"testing"

	"LifeLedger/internal/model"
)

func newTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	r := newTestRecorder(t)

	if err := r.RecordDay(&DaySnapshot{
		GameID: "game_t", Day: 1,
		Stats:  model.Stats{Health: 70, Happiness: 70, Money: 400, FreeTime: 8},
		Source: "mock",
	}); err != nil {
		t.Fatalf("record day: %v", err)
	}
	if err := r.RecordChoice(&ChoiceEvent{
		GameID: "game_t", Day: 1, ChoiceID: 2, ChoiceText: "Play it safe",
		HealthDelta: -5, MoodDelta: 3, MoneyDelta: -10, Source: "mock",
	}); err != nil {
		t.Fatalf("record choice: %v", err)
	}
	if err := r.RecordAction(&ActionEvent{
		GameID: "game_t", Day: 1, ActionID: "work-gig", Name: "Do a Quick Gig",
		TimeCost: 1.5, MoneyDelta: 15,
	}); err != nil {
		t.Fatalf("record action: %v", err)
	}
	if err := r.RecordFinance(&FinanceEvent{
		GameID: "game_t", Day: 1, Kind: "DEPOSIT", Amount: 100, Balance: 100,
	}); err != nil {
		t.Fatalf("record finance: %v", err)
	}
	if err := r.RecordRun(&RunSummary{
		GameID: "game_t", FinalDay: 11,
		Stats: model.Stats{Health: 62, Happiness: 75, Money: 512},
		Grade: "Thriving", Source: "mock", Completed: true,
	}); err != nil {
		t.Fatalf("record run: %v", err)
	}

	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM day_snapshots WHERE game_id = ?`, "game_t").Scan(&n); err != nil || n != 1 {
		t.Errorf("day_snapshots count = %d, err %v", n, err)
	}
	var completed int
	var grade string
	if err := r.db.QueryRow(`SELECT completed, grade FROM run_summaries WHERE game_id = ?`, "game_t").Scan(&completed, &grade); err != nil {
		t.Fatalf("query run summary: %v", err)
	}
	if completed != 1 || grade != "Thriving" {
		t.Errorf("run summary stored completed=%d grade=%q", completed, grade)
	}
}

func TestSQLiteRecorder_MigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	r1, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	r1.Close()

	r2, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("reopen over existing schema: %v", err)
	}
	r2.Close()
}
