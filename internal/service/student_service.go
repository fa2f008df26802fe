package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/query"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/events"
	"github.com/noah-isme/school-admin-api/pkg/importer"
)

const dateLayout = "2006-01-02"

type studentStore interface {
	Students() []models.Student
	Student(id string) (models.Student, error)
	AddStudent(data models.Student) (models.Student, error)
	RemoveStudent(id string) bool
}

// GuardianRequest describes the guardian block of the admission form.
type GuardianRequest struct {
	Name     string `json:"name" validate:"required"`
	Relation string `json:"relation" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// CreateStudentRequest holds payload for admitting students.
type CreateStudentRequest struct {
	FirstName     string          `json:"first_name" validate:"required"`
	LastName      string          `json:"last_name" validate:"required"`
	DateOfBirth   string          `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Grade         int             `json:"grade" validate:"required,min=1,max=12"`
	Section       string          `json:"section" validate:"required,section"`
	ContactNumber string          `json:"contact_number" validate:"required"`
	Email         string          `json:"email" validate:"required,email"`
	Address       string          `json:"address" validate:"required"`
	Guardian      GuardianRequest `json:"guardian"`
	AdmissionDate string          `json:"admission_date" validate:"omitempty,datetime=2006-01-02"`
	Avatar        *string         `json:"avatar"`
	BloodGroup    *string         `json:"blood_group"`
}

// ImportRowError reports why one spreadsheet row was rejected.
type ImportRowError struct {
	Row     int               `json:"row"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ImportResult summarises a bulk admission upload.
type ImportResult struct {
	Imported []models.Student `json:"imported"`
	Failed   []ImportRowError `json:"failed"`
}

// StudentServiceParams groups constructor dependencies.
type StudentServiceParams struct {
	Store     studentStore
	Validator *Validator
	Exports   datasetRenderer
	Publisher events.Publisher
	Metrics   *MetricsService
	Logger    *zap.Logger
	Now       func() time.Time
}

// StudentService handles student use-cases.
type StudentService struct {
	store     studentStore
	validator *Validator
	exports   datasetRenderer
	publisher events.Publisher
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewStudentService constructs the student service.
func NewStudentService(params StudentServiceParams) *StudentService {
	svc := &StudentService{
		store:     params.Store,
		validator: params.Validator,
		exports:   params.Exports,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
		now:       params.Now,
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
	if svc.exports == nil {
		svc.exports = NewExportService(nil, svc.metrics, svc.logger)
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	return svc
}

// List returns the students matching filter and pagination metadata.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error) {
	matched := query.Students(s.store.Students(), filter)
	page, pagination := models.Paginate(matched, filter.Page, filter.PageSize)
	return page, &pagination, nil
}

// Filters lists the grades and sections present in the directory.
func (s *StudentService) Filters(ctx context.Context) models.StudentFilterOptions {
	return query.StudentOptions(s.store.Students())
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.store.Student(id)
	if err != nil {
		return nil, storeError(err, "student not found", "failed to load student")
	}
	return &student, nil
}

// Create admits a new student. The status is always Active and the admission
// date defaults to today.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req, "invalid student payload"); err != nil {
		return nil, err
	}
	student, err := s.store.AddStudent(s.newStudent(req))
	if err != nil {
		return nil, storeError(err, "student not found", "failed to create student")
	}
	s.logger.Info("student added", zap.String("id", student.ID), zap.String("name", student.FullName()))
	s.metrics.RecordAdded("student")
	notify(ctx, s.publisher, s.logger, events.StudentAdded, student.ID)
	return &student, nil
}

// Remove deletes a student. Unknown ids are accepted silently.
func (s *StudentService) Remove(ctx context.Context, id string) error {
	if !s.store.RemoveStudent(id) {
		s.logger.Debug("remove skipped, student absent", zap.String("id", id))
		return nil
	}
	s.logger.Info("student removed", zap.String("id", id))
	s.metrics.RecordRemoved("student")
	notify(ctx, s.publisher, s.logger, events.StudentRemoved, id)
	return nil
}

// Import admits every valid row of an XLSX upload. Rows failing validation
// are reported by sheet line number and do not stop the import.
func (s *StudentService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := importer.ReadRows(r)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unreadable spreadsheet")
	}
	result := &ImportResult{Imported: []models.Student{}, Failed: []ImportRowError{}}
	for _, row := range rows {
		req, convErr := requestFromRow(row)
		if convErr != nil {
			result.Failed = append(result.Failed, ImportRowError{Row: row.Number, Message: convErr.Error()})
			continue
		}
		student, err := s.Create(ctx, req)
		if err != nil {
			appErr := appErrors.FromError(err)
			result.Failed = append(result.Failed, ImportRowError{Row: row.Number, Message: appErr.Message, Details: appErr.Details})
			continue
		}
		result.Imported = append(result.Imported, *student)
	}
	s.logger.Info("student import finished", zap.Int("imported", len(result.Imported)), zap.Int("failed", len(result.Failed)))
	return result, nil
}

// Export renders the filtered directory in format.
func (s *StudentService) Export(ctx context.Context, filter models.StudentFilter, format string) (*ExportFile, error) {
	matched := query.Students(s.store.Students(), filter)
	return s.exports.Render(format, studentRoster(matched), "students")
}

func (s *StudentService) newStudent(req CreateStudentRequest) models.Student {
	admitted := req.AdmissionDate
	if admitted == "" {
		admitted = s.now().Format(dateLayout)
	}
	return models.Student{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		Grade:         req.Grade,
		Section:       req.Section,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		Address:       req.Address,
		Guardian: models.Guardian{
			Name:     req.Guardian.Name,
			Relation: req.Guardian.Relation,
			Contact:  req.Guardian.Contact,
			Email:    req.Guardian.Email,
		},
		Status:        models.StudentStatusActive,
		AdmissionDate: admitted,
		Avatar:        req.Avatar,
		BloodGroup:    req.BloodGroup,
	}
}

func requestFromRow(row importer.Row) (CreateStudentRequest, error) {
	req := CreateStudentRequest{
		FirstName:     row.Get("first_name"),
		LastName:      row.Get("last_name"),
		DateOfBirth:   row.Get("date_of_birth"),
		Section:       row.Get("section"),
		ContactNumber: row.Get("contact_number"),
		Email:         row.Get("email"),
		Address:       row.Get("address"),
		Guardian: GuardianRequest{
			Name:     row.Get("guardian_name"),
			Relation: row.Get("guardian_relation"),
			Contact:  row.Get("guardian_contact"),
			Email:    row.Get("guardian_email"),
		},
		AdmissionDate: row.Get("admission_date"),
	}
	if raw := row.Get("grade"); raw != "" {
		grade, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("grade %q is not a number", raw)
		}
		req.Grade = grade
	}
	if bg := row.Get("blood_group"); bg != "" {
		req.BloodGroup = &bg
	}
	return req, nil
}
