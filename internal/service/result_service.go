package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/pkg/grading"
)

type resultStore interface {
	Student(id string) (models.Student, error)
	StudentSubjects(studentID string) []models.Subject
}

// ResultService derives result cards from stored scores.
type ResultService struct {
	store   resultStore
	exports datasetRenderer
	logger  *zap.Logger
}

// NewResultService constructs a ResultService.
func NewResultService(store resultStore, exports datasetRenderer, logger *zap.Logger) *ResultService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exports == nil {
		exports = NewExportService(nil, nil, logger)
	}
	return &ResultService{store: store, exports: exports, logger: logger}
}

// Result builds the result card of a student. Nothing derived is stored.
func (s *ResultService) Result(ctx context.Context, studentID string) (*models.StudentResult, error) {
	student, err := s.store.Student(studentID)
	if err != nil {
		return nil, storeError(err, "student not found", "failed to load student")
	}
	return BuildResult(student, s.store.StudentSubjects(studentID)), nil
}

// Export renders the result card in format as <First>_<Last>_Results.<ext>.
func (s *ResultService) Export(ctx context.Context, studentID, format string) (*ExportFile, error) {
	result, err := s.Result(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return s.exports.Render(format, resultCard(result), resultFilename(result.Student))
}

// BuildResult grades each subject and the overall totals.
func BuildResult(student models.Student, subjects []models.Subject) *models.StudentResult {
	rows := make([]models.ResultRow, 0, len(subjects))
	scored := make([]grading.Scored, 0, len(subjects))
	for _, sub := range subjects {
		rec := grading.Scored{Score: sub.Score, MaxScore: sub.MaxScore}
		scored = append(scored, rec)
		eval := grading.Evaluate(rec)
		rows = append(rows, models.ResultRow{
			SubjectID:  sub.ID,
			Subject:    sub.Name,
			Teacher:    sub.Teacher,
			MaxScore:   sub.MaxScore,
			Score:      sub.Score,
			Percentage: eval.Percentage,
			Grade:      eval.Grade,
			Passing:    eval.Passing,
			Tone:       grading.Tone(eval.Grade),
		})
	}
	summary := grading.Aggregate(scored)
	return &models.StudentResult{
		Student: student,
		Rows:    rows,
		Summary: summary,
		Verdict: grading.Verdict(summary.Passing),
		Tone:    grading.Tone(summary.Grade),
	}
}
