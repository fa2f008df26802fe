package grading

// Scored is a single mark against its maximum. A nil Score has not been
// entered yet and counts as zero.
type Scored struct {
	Score    *float64
	MaxScore float64
}

// Summary is the computed outcome for one subject or a whole result card.
type Summary struct {
	TotalScore float64 `json:"total_score"`
	TotalMax   float64 `json:"total_max"`
	Percentage float64 `json:"percentage"`
	Grade      Grade   `json:"grade"`
	Passing    bool    `json:"passing"`
}

// Evaluate grades a single record.
func Evaluate(r Scored) Summary {
	return summarize(value(r.Score), r.MaxScore)
}

// Aggregate sums scores and maxima independently, then grades the totals.
// It does not average per-subject percentages. An empty input yields a zero
// summary graded F.
func Aggregate(records []Scored) Summary {
	var total, max float64
	for _, r := range records {
		total += value(r.Score)
		max += r.MaxScore
	}
	return summarize(total, max)
}

func summarize(score, max float64) Summary {
	pct := Percentage(score, max)
	return Summary{
		TotalScore: score,
		TotalMax:   max,
		Percentage: pct,
		Grade:      LetterGrade(pct),
		Passing:    IsPassing(pct),
	}
}

func value(score *float64) float64 {
	if score == nil {
		return 0
	}
	return *score
}
