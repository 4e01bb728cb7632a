package notifier

import (
	"fmt"
	"strings"
	"time"

	"LifeLedger/internal/collection"
	"LifeLedger/internal/model"
)

// FormatRunReport formats a finished run into a notification message.
func FormatRunReport(sess *model.GameSession, assessment *model.Assessment) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("LifeLedger run report | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Game: %s (source: %s)\n", sess.GameID, sess.Source))
	if assessment.Completed {
		b.WriteString(fmt.Sprintf("Survived through day %d\n\n", sess.Day-1))
	} else {
		b.WriteString(fmt.Sprintf("Run ended early on day %d\n\n", sess.Day))
	}

	b.WriteString("Final stats:\n")
	b.WriteString(fmt.Sprintf("  Health: %d | Happiness: %d | Stress: %d\n",
		sess.Stats.Health, sess.Stats.Happiness, sess.Stats.Stress))
	b.WriteString(fmt.Sprintf("  Money: $%.2f", sess.Stats.Money))
	if sess.Finances.Savings != nil {
		b.WriteString(fmt.Sprintf(" | Savings: $%.2f (%s)", sess.Finances.Savings.Balance, sess.Finances.Savings.Type))
	}
	b.WriteString("\n\n")

	b.WriteString("Factor breakdown:\n")
	for _, f := range assessment.Factors {
		b.WriteString(fmt.Sprintf("  %s (%s): %+.0f (x%.2f) = %+.3f\n",
			f.Name, f.Commentary, f.RawScore, f.Weight, f.Weighted))
	}
	b.WriteString("  -----------------\n")
	b.WriteString(fmt.Sprintf("  Total: %+.3f\n\n", assessment.TotalScore))

	b.WriteString(fmt.Sprintf("Verdict: %s - %s\n", assessment.Grade.Label, assessment.Grade.Blurb))
	return b.String()
}

// FormatAchievements formats the unlocked cards for display.
func FormatAchievements(cards []collection.Card) string {
	if len(cards) == 0 {
		return "No achievements unlocked this run."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Achievements unlocked (%d):\n", len(cards)))
	for _, c := range cards {
		b.WriteString(fmt.Sprintf("  [%s] %s - %s\n", c.ID, c.Title, c.Description))
	}
	return b.String()
}

// FormatDailyStatus formats a condensed mid-run status line.
func FormatDailyStatus(st model.Status) string {
	return fmt.Sprintf("Day %d | health %d | money $%.2f | mood %d",
		st.Day, st.Health, st.Money, st.Mood)
}
