package model

// Stats holds the full per-day life-state vector.
type Stats struct {
	Health        int     `json:"health"`
	Happiness     int     `json:"happiness"`
	Stress        int     `json:"stress"`
	Reputation    int     `json:"reputation"`
	Education     int     `json:"education"`
	Money         float64 `json:"money"`
	WeeklyIncome  float64 `json:"weekly_income"`
	WeeklyExpense float64 `json:"weekly_expense"`
	FreeTime      float64 `json:"free_time"`
}

// Impact is a signed per-stat delta carried by a choice or action.
// A zero field means no change to that stat.
type Impact struct {
	Health        int     `json:"health"`
	Happiness     int     `json:"happiness"`
	Stress        int     `json:"stress"`
	Reputation    int     `json:"reputation"`
	Education     int     `json:"education"`
	Money         float64 `json:"money"`
	WeeklyIncome  float64 `json:"weekly_income"`
	WeeklyExpense float64 `json:"weekly_expense"`
	FreeTime      float64 `json:"free_time"`
}

// Status is the condensed life-state view the progression logic reports:
// mood mirrors happiness under its legacy name.
type Status struct {
	GameID string  `json:"game_id"`
	Day    int     `json:"day"`
	Health int     `json:"health"`
	Money  float64 `json:"money"`
	Mood   int     `json:"mood"`
	IsOver bool    `json:"is_over"`
}

// clampPct bounds a percentage stat to [0,100].
func clampPct(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ApplyImpact returns a new Stats with the impact applied. Health, happiness
// and stress clamp to [0,100]; reputation, education and the weekly figures
// accumulate unbounded; money floors at 0. The second return reports whether
// the raw money sum went negative before flooring (bankruptcy).
func ApplyImpact(s Stats, imp Impact) (Stats, bool) {
	out := s
	out.Health = clampPct(s.Health + imp.Health)
	out.Happiness = clampPct(s.Happiness + imp.Happiness)
	out.Stress = clampPct(s.Stress + imp.Stress)
	out.Reputation = s.Reputation + imp.Reputation
	out.Education = s.Education + imp.Education
	out.WeeklyIncome = s.WeeklyIncome + imp.WeeklyIncome
	out.WeeklyExpense = s.WeeklyExpense + imp.WeeklyExpense
	out.FreeTime = s.FreeTime + imp.FreeTime

	raw := s.Money + imp.Money
	bankrupt := raw < 0
	if raw < 0 {
		raw = 0
	}
	out.Money = raw

	return out, bankrupt
}

// Terminal reports whether the game is over for the given stats: ruined
// health, ruined mood, or bankruptcy.
func Terminal(s Stats, bankrupt bool) bool {
	return s.Health <= 0 || s.Happiness <= 0 || bankrupt
}
