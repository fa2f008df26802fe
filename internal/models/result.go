package models

import "github.com/noah-isme/school-admin-api/pkg/grading"

// ResultRow is one subject line of a result card.
type ResultRow struct {
	SubjectID  string        `json:"subject_id"`
	Subject    string        `json:"subject"`
	Teacher    string        `json:"teacher"`
	MaxScore   float64       `json:"max_score"`
	Score      *float64      `json:"score"`
	Percentage float64       `json:"percentage"`
	Grade      grading.Grade `json:"grade"`
	Passing    bool          `json:"passing"`
	Tone       string        `json:"tone"`
}

// StudentResult is the derived result card for one student. It is rebuilt on
// every request and never stored.
type StudentResult struct {
	Student Student         `json:"student"`
	Rows    []ResultRow     `json:"subjects"`
	Summary grading.Summary `json:"summary"`
	Verdict string          `json:"verdict"`
	Tone    string          `json:"tone"`
}
