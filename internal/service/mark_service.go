package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/events"
	"github.com/noah-isme/school-admin-api/pkg/grading"
)

const (
	msgMarksRequired = "please enter marks for all subjects"
	msgMarksNegative = "marks cannot be negative"
)

type markStore interface {
	Student(id string) (models.Student, error)
	StudentSubjects(studentID string) []models.Subject
	UpdateScores(studentID string, updated []models.Subject) models.ScoreUpdate
}

// MarkEntry is one submitted score.
type MarkEntry struct {
	SubjectID string   `json:"subject_id" validate:"required"`
	Score     *float64 `json:"score"`
}

// SaveMarksRequest carries a full mark sheet.
type SaveMarksRequest struct {
	Marks []MarkEntry `json:"marks" validate:"required,min=1,dive"`
}

// PreviewEntry is an unsaved score against its maximum.
type PreviewEntry struct {
	Subject  string   `json:"subject"`
	Score    *float64 `json:"score"`
	MaxScore float64  `json:"max_score" validate:"gt=0"`
}

// PreviewRequest carries entries for the live grade badge.
type PreviewRequest struct {
	Entries []PreviewEntry `json:"entries" validate:"required,min=1,dive"`
}

// PreviewRow is the computed badge for one entry.
type PreviewRow struct {
	Subject    string        `json:"subject"`
	Percentage float64       `json:"percentage"`
	Grade      grading.Grade `json:"grade"`
	Passing    bool          `json:"passing"`
	Tone       string        `json:"tone"`
}

// PreviewResult is the unsaved grade preview.
type PreviewResult struct {
	Rows    []PreviewRow    `json:"rows"`
	Summary grading.Summary `json:"summary"`
}

// SaveMarksResult reports the store outcome and the refreshed result card.
type SaveMarksResult struct {
	Update models.ScoreUpdate    `json:"update"`
	Result *models.StudentResult `json:"result"`
}

// MarkServiceParams groups constructor dependencies.
type MarkServiceParams struct {
	Store     markStore
	Validator *Validator
	Publisher events.Publisher
	Metrics   *MetricsService
	Logger    *zap.Logger
}

// MarkService handles mark entry.
type MarkService struct {
	store     markStore
	validator *Validator
	publisher events.Publisher
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewMarkService constructs a MarkService.
func NewMarkService(params MarkServiceParams) *MarkService {
	svc := &MarkService{
		store:     params.Store,
		validator: params.Validator,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
	if svc.validator == nil {
		svc.validator = NewValidator()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	if svc.publisher == nil {
		svc.publisher = events.Nop{}
	}
	return svc
}

// SaveMarks validates a complete mark sheet for studentID and stores it.
// Every subject on the sheet needs a score within [0, max]. Entries naming
// records the student does not own are skipped by the store and logged.
func (s *MarkService) SaveMarks(ctx context.Context, studentID string, req SaveMarksRequest) (*SaveMarksResult, error) {
	if err := s.validator.Struct(req, "invalid marks payload"); err != nil {
		return nil, err
	}
	student, err := s.store.Student(studentID)
	if err != nil {
		return nil, storeError(err, "student not found", "failed to load student")
	}
	sheet := s.store.StudentSubjects(studentID)
	known := make(map[string]models.Subject, len(sheet))
	for _, sub := range sheet {
		known[sub.ID] = sub
	}

	details := make(map[string]string)
	submitted := make(map[string]struct{}, len(req.Marks))
	updates := make([]models.Subject, 0, len(req.Marks))
	for _, entry := range req.Marks {
		submitted[entry.SubjectID] = struct{}{}
		stored, ok := known[entry.SubjectID]
		if msg := checkMark(entry.Score, stored.MaxScore, ok); msg != "" {
			details[entry.SubjectID] = msg
			continue
		}
		if !ok {
			stored = models.Subject{ID: entry.SubjectID}
		}
		score := *entry.Score
		stored.Score = &score
		updates = append(updates, stored)
	}
	for _, sub := range sheet {
		if _, ok := submitted[sub.ID]; !ok {
			details[sub.ID] = msgMarksRequired
		}
	}
	if len(details) > 0 {
		return nil, appErrors.WithDetails(appErrors.ErrValidation, "invalid marks", details)
	}

	update := s.store.UpdateScores(studentID, updates)
	if len(update.Ignored) > 0 {
		s.logger.Warn("ignored score records", zap.String("student_id", studentID), zap.Strings("ids", update.Ignored))
	}
	s.metrics.RecordScoreUpdates(len(update.Applied), len(update.Ignored))
	s.logger.Info("marks saved", zap.String("student_id", studentID), zap.Int("applied", len(update.Applied)))
	notify(ctx, s.publisher, s.logger, events.MarksSaved, studentID)

	return &SaveMarksResult{
		Update: update,
		Result: BuildResult(student, s.store.StudentSubjects(studentID)),
	}, nil
}

// Preview grades entries without storing anything.
func (s *MarkService) Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error) {
	if err := s.validator.Struct(req, "invalid preview payload"); err != nil {
		return nil, err
	}
	rows := make([]PreviewRow, 0, len(req.Entries))
	scored := make([]grading.Scored, 0, len(req.Entries))
	for _, e := range req.Entries {
		rec := grading.Scored{Score: e.Score, MaxScore: e.MaxScore}
		scored = append(scored, rec)
		eval := grading.Evaluate(rec)
		rows = append(rows, PreviewRow{
			Subject:    e.Subject,
			Percentage: eval.Percentage,
			Grade:      eval.Grade,
			Passing:    eval.Passing,
			Tone:       grading.Tone(eval.Grade),
		})
	}
	return &PreviewResult{Rows: rows, Summary: grading.Aggregate(scored)}, nil
}

// checkMark returns a readable problem with score, or "". The upper bound is
// only enforced for records on the student's sheet.
func checkMark(score *float64, max float64, known bool) string {
	switch {
	case score == nil:
		return msgMarksRequired
	case *score < 0:
		return msgMarksNegative
	case known && *score > max:
		return fmt.Sprintf("marks cannot exceed %s", number(max))
	}
	return ""
}
