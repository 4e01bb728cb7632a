package model

// FactorScore is one scored aspect of a finished run.
type FactorScore struct {
	Name       string
	RawScore   float64
	Weight     float64
	Weighted   float64
	Commentary string
}

// Grade maps a total assessment score to a mentor verdict.
type Grade struct {
	Label string
	Blurb string
}

// Assessment is the mentor's end-of-run evaluation.
type Assessment struct {
	Factors    []FactorScore
	TotalScore float64
	Grade      Grade
	Completed  bool
}
