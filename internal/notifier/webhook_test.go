package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"LifeLedger/internal/collection"
	"LifeLedger/internal/model"
)

func TestWebhookNotifier_Send(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
	}))
	defer srv.Close()

	wn := NewWebhookNotifier(srv.URL)
	if err := wn.Send("hello"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if got["text"] != "hello" {
		t.Errorf("payload text = %q", got["text"])
	}
}

func TestWebhookNotifier_SendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	wn := NewWebhookNotifier(srv.URL)
	if err := wn.Send("hello"); err == nil {
		t.Error("non-2xx status should be an error")
	}
}

func TestSendWithRetry_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	wn := NewWebhookNotifier(srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := wn.SendWithRetry(ctx, "hello", 3); err == nil {
		t.Error("cancelled context should abort retries")
	}
}

func TestFormatRunReport(t *testing.T) {
	sess := &model.GameSession{
		GameID: "game_r",
		Day:    11,
		Stats:  model.Stats{Health: 62, Happiness: 75, Money: 512.5},
		Source: model.SourceMock,
		Finances: model.Finances{
			Savings: &model.SavingsAccount{Type: model.AccountFlexible, Balance: 120},
		},
	}
	a := &model.Assessment{
		Factors: []model.FactorScore{
			{Name: "vitality", RawScore: 1, Weight: 0.25, Weighted: 0.25, Commentary: "health held up well"},
		},
		TotalScore: 0.25,
		Grade:      model.Grade{Label: "On Track", Blurb: "Solid footing."},
		Completed:  true,
	}

	out := FormatRunReport(sess, a)
	for _, want := range []string{"game_r", "Survived through day 10", "Health: 62", "$512.50", "vitality", "On Track"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatAchievements(t *testing.T) {
	if out := FormatAchievements(nil); !strings.Contains(out, "No achievements") {
		t.Errorf("empty list: %q", out)
	}
	out := FormatAchievements([]collection.Card{{ID: "survivor", Title: "Survivor", Description: "Saw it through."}})
	if !strings.Contains(out, "Survivor") {
		t.Errorf("card missing from %q", out)
	}
}
