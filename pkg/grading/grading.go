// Package grading converts raw marks into percentages, letter grades and
// pass/fail verdicts. Every screen of the admin API derives its labels from
// these functions; nothing else re-encodes the thresholds.
package grading

import "math"

// Grade is a letter symbol mapped from a percentage.
type Grade string

// Letter grades from highest to lowest.
const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// PassMark is the lowest passing percentage.
const PassMark = 40.0

// Band is one step of the grading scale: percentages at or above Min (and
// below the previous band's Min) earn Grade.
type Band struct {
	Grade Grade   `json:"grade"`
	Min   float64 `json:"min"`
}

// scale is ordered highest threshold first.
var scale = []Band{
	{Grade: GradeAPlus, Min: 90},
	{Grade: GradeA, Min: 80},
	{Grade: GradeBPlus, Min: 70},
	{Grade: GradeB, Min: 60},
	{Grade: GradeCPlus, Min: 50},
	{Grade: GradeC, Min: 40},
	{Grade: GradeD, Min: 33},
}

// Scale returns a copy of the grading bands, highest first. F covers
// everything below the last band.
func Scale() []Band {
	out := make([]Band, len(scale))
	copy(out, scale)
	return out
}

// Percentage returns score/maxScore*100, or 0 when maxScore is 0.
// The value is neither clamped nor rounded.
func Percentage(score, maxScore float64) float64 {
	if maxScore == 0 {
		return 0
	}
	return (score / maxScore) * 100
}

// LetterGrade maps a percentage onto the grading scale. It is defined for
// every input: negative values and NaN earn F, anything from 90 up earns A+.
func LetterGrade(percentage float64) Grade {
	if math.IsNaN(percentage) {
		return GradeF
	}
	for _, band := range scale {
		if percentage >= band.Min {
			return band.Grade
		}
	}
	return GradeF
}

// IsPassing reports whether percentage reaches the pass mark.
func IsPassing(percentage float64) bool {
	return percentage >= PassMark
}

// Tone is the badge colour used when rendering a grade.
func Tone(g Grade) string {
	switch g {
	case GradeAPlus:
		return "purple"
	case GradeA:
		return "blue"
	case GradeBPlus, GradeB:
		return "green"
	case GradeCPlus, GradeC:
		return "yellow"
	case GradeD:
		return "orange"
	case GradeF:
		return "red"
	default:
		return "slate"
	}
}

// Verdict renders a pass/fail flag the way result cards print it.
func Verdict(passing bool) string {
	if passing {
		return "PASS"
	}
	return "FAIL"
}
