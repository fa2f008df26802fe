package models

// Subject is a per-student subject/score record. Score stays nil until marks
// are entered.
type Subject struct {
	ID        string   `json:"id"`
	StudentID string   `json:"student_id"`
	Name      string   `json:"name"`
	MaxScore  float64  `json:"max_score"`
	Score     *float64 `json:"score"`
	Teacher   string   `json:"teacher"`
}

// CatalogSubject is a template from which unscored records are provisioned.
type CatalogSubject struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	MaxScore float64 `json:"max_score"`
	Teacher  string  `json:"teacher"`
}

// ScoreUpdate reports which submitted record ids replaced stored records and
// which were ignored because nothing matched.
type ScoreUpdate struct {
	Applied []string `json:"applied"`
	Ignored []string `json:"ignored"`
}
