package catalog

import (
	"testing"

	"LifeLedger/internal/model"
)

func TestDailySelector_Deterministic(t *testing.T) {
	sel := DailySelector{}
	for day := 1; day <= 45; day++ {
		want := (day - 1) % 20
		if got := sel.Pick(day, 20); got != want {
			t.Fatalf("day %d: got index %d, want %d", day, got, want)
		}
	}
}

func TestRandomSelector_SeededAndBounded(t *testing.T) {
	a := NewRandomSelector(42)
	b := NewRandomSelector(42)
	for i := 0; i < 50; i++ {
		ia, ib := a.Pick(i, 20), b.Pick(i, 20)
		if ia != ib {
			t.Fatalf("same seed diverged at pick %d: %d vs %d", i, ia, ib)
		}
		if ia < 0 || ia >= 20 {
			t.Fatalf("pick %d out of range: %d", i, ia)
		}
	}
}

func TestPickEvent(t *testing.T) {
	cat := New(DailySelector{})
	if cat.PoolSize() != 20 {
		t.Fatalf("pool size: got %d, want 20", cat.PoolSize())
	}

	ev := cat.PickEvent(3)
	if ev.Day != 3 {
		t.Errorf("event day: got %d, want 3", ev.Day)
	}
	if len(ev.Choices) == 0 {
		t.Fatal("event has no choices")
	}

	// Same underlying pool entry should repeat after a full cycle.
	again := cat.PickEvent(23)
	if again.Description != ev.Description {
		t.Errorf("day 23 should repeat day 3's event, got %q vs %q", again.Description, ev.Description)
	}

	// Mutating the returned choices must not leak into the pool.
	ev.Choices[0].Text = "mutated"
	if cat.PickEvent(3).Choices[0].Text == "mutated" {
		t.Error("PickEvent leaked a reference into the static pool")
	}
}

func TestIntroEvent(t *testing.T) {
	cat := New(DailySelector{})
	ev := cat.IntroEvent(model.StartRequest{CharacterName: "Mika", Age: 30, Work: true})
	if ev.Day != 1 {
		t.Errorf("intro day: got %d, want 1", ev.Day)
	}
	if len(ev.Choices) != 3 {
		t.Fatalf("intro choices: got %d, want 3", len(ev.Choices))
	}
	for i, ch := range ev.Choices {
		if ch.ID != i+1 {
			t.Errorf("choice %d has id %d, want %d", i, ch.ID, i+1)
		}
	}
	if ev.ChoiceByID(4) != nil {
		t.Error("ChoiceByID(4) should be nil")
	}
}

func TestActionCatalog(t *testing.T) {
	acts := Actions()
	if len(acts) == 0 {
		t.Fatal("action pool is empty")
	}
	for _, a := range acts {
		if a.ID == "" || a.Name == "" {
			t.Errorf("action missing identity: %+v", a)
		}
		if a.TimeCost < 0 || a.Cost < 0 {
			t.Errorf("action %s has negative cost: %+v", a.ID, a)
		}
	}

	first := acts[0]
	got := ActionByID(first.ID)
	if got == nil || got.Name != first.Name {
		t.Fatalf("ActionByID(%q) = %+v", first.ID, got)
	}
	if ActionByID("no-such-action") != nil {
		t.Error("unknown id should return nil")
	}
}
