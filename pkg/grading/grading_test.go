package grading

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(25, 0))
	assert.Equal(t, 0.0, Percentage(-3, 0))
	assert.Equal(t, 100.0, Percentage(40, 40))
	assert.Equal(t, 45.0, Percentage(18, 40))
	assert.Equal(t, 150.0, Percentage(60, 40))
}

func TestLetterGradeBoundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want Grade
	}{
		{150, GradeAPlus},
		{90, GradeAPlus},
		{89.999, GradeA},
		{80, GradeA},
		{79.999, GradeBPlus},
		{70, GradeBPlus},
		{60, GradeB},
		{59.999, GradeCPlus},
		{50, GradeCPlus},
		{40, GradeC},
		{39.999, GradeD},
		{33, GradeD},
		{32.999, GradeF},
		{0, GradeF},
		{-5, GradeF},
		{math.Inf(1), GradeAPlus},
		{math.Inf(-1), GradeF},
		{math.NaN(), GradeF},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LetterGrade(tc.pct), "percentage %v", tc.pct)
	}
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(40))
	assert.True(t, IsPassing(100))
	assert.False(t, IsPassing(39.999999))
	assert.False(t, IsPassing(-1))
}

func TestToneFollowsGrade(t *testing.T) {
	assert.Equal(t, "purple", Tone(GradeAPlus))
	assert.Equal(t, "green", Tone(GradeB))
	assert.Equal(t, "red", Tone(GradeF))
	assert.Equal(t, "slate", Tone(Grade("?")))
}

func TestScaleIsCopy(t *testing.T) {
	s := Scale()
	require.Len(t, s, 7)
	s[0].Min = 0
	assert.Equal(t, GradeAPlus, LetterGrade(95))
	assert.Equal(t, GradeF, LetterGrade(10))
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	assert.Equal(t, Summary{Grade: GradeF}, got)
}

func TestAggregateSumsBeforeGrading(t *testing.T) {
	got := Aggregate([]Scored{
		{Score: ptr(18), MaxScore: 40},
		{Score: ptr(25), MaxScore: 50},
	})
	assert.Equal(t, 43.0, got.TotalScore)
	assert.Equal(t, 90.0, got.TotalMax)
	assert.InDelta(t, 47.78, got.Percentage, 0.01)
	assert.Equal(t, GradeC, got.Grade)
	assert.True(t, got.Passing)
}

func TestAggregateUnsetScoreCountsAsZero(t *testing.T) {
	got := Aggregate([]Scored{
		{Score: nil, MaxScore: 50},
		{Score: ptr(50), MaxScore: 50},
	})
	assert.Equal(t, 50.0, got.TotalScore)
	assert.Equal(t, 100.0, got.TotalMax)
	assert.Equal(t, 50.0, got.Percentage)
	assert.Equal(t, GradeCPlus, got.Grade)
}

func TestEvaluateSingleRecord(t *testing.T) {
	got := Evaluate(Scored{Score: ptr(13), MaxScore: 40})
	assert.Equal(t, 32.5, got.Percentage)
	assert.Equal(t, GradeF, got.Grade)
	assert.False(t, got.Passing)

	zero := Evaluate(Scored{Score: ptr(10), MaxScore: 0})
	assert.Equal(t, 0.0, zero.Percentage)
	assert.Equal(t, GradeF, zero.Grade)
}
