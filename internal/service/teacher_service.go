package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/query"
	"github.com/noah-isme/school-admin-api/pkg/events"
)

type teacherStore interface {
	Teachers() []models.Teacher
	Teacher(id string) (models.Teacher, error)
	AddTeacher(data models.Teacher) (models.Teacher, error)
	RemoveTeacher(id string) bool
}

// CreateTeacherRequest holds payload for registering teachers.
type CreateTeacherRequest struct {
	FirstName      string   `json:"first_name" validate:"required"`
	LastName       string   `json:"last_name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required"`
	Designation    string   `json:"designation" validate:"required"`
	Department     string   `json:"department" validate:"required,department"`
	Subjects       []string `json:"subjects" validate:"omitempty,dive,required"`
	Qualifications []string `json:"qualifications" validate:"omitempty,dive,required"`
	JoinDate       string   `json:"join_date" validate:"required,datetime=2006-01-02"`
	Address        string   `json:"address" validate:"required"`
	Avatar         *string  `json:"avatar"`
}

// TeacherServiceParams groups constructor dependencies.
type TeacherServiceParams struct {
	Store     teacherStore
	Validator *Validator
	Exports   datasetRenderer
	Publisher events.Publisher
	Metrics   *MetricsService
	Logger    *zap.Logger
}

// TeacherService exposes business logic for teachers.
type TeacherService struct {
	store     teacherStore
	validator *Validator
	exports   datasetRenderer
	publisher events.Publisher
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(params TeacherServiceParams) *TeacherService {
	svc := &TeacherService{
		store:     params.Store,
		validator: params.Validator,
		exports:   params.Exports,
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
	if svc.exports == nil {
		svc.exports = NewExportService(nil, svc.metrics, svc.logger)
	}
	return svc
}

// List returns teachers with pagination metadata.
func (s *TeacherService) List(ctx context.Context, filter models.TeacherFilter) ([]models.Teacher, *models.Pagination, error) {
	matched := query.Teachers(s.store.Teachers(), filter)
	page, pagination := models.Paginate(matched, filter.Page, filter.PageSize)
	return page, &pagination, nil
}

// Filters lists the departments present in the directory.
func (s *TeacherService) Filters(ctx context.Context) models.TeacherFilterOptions {
	return query.TeacherOptions(s.store.Teachers())
}

// Get returns teacher by ID.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.store.Teacher(id)
	if err != nil {
		return nil, storeError(err, "teacher not found", "failed to load teacher")
	}
	return &teacher, nil
}

// Create registers a teacher. The store assigns the id and employee code.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req, "invalid teacher payload"); err != nil {
		return nil, err
	}
	teacher, err := s.store.AddTeacher(models.Teacher{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Designation:    req.Designation,
		Department:     req.Department,
		Subjects:       req.Subjects,
		Qualifications: req.Qualifications,
		JoinDate:       req.JoinDate,
		Address:        req.Address,
		Avatar:         req.Avatar,
	})
	if err != nil {
		return nil, storeError(err, "teacher not found", "failed to create teacher")
	}
	s.logger.Info("teacher added", zap.String("id", teacher.ID), zap.String("employee_id", teacher.EmployeeID))
	s.metrics.RecordAdded("teacher")
	notify(ctx, s.publisher, s.logger, events.TeacherAdded, teacher.ID)
	return &teacher, nil
}

// Remove deletes a teacher. Unknown ids are accepted silently.
func (s *TeacherService) Remove(ctx context.Context, id string) error {
	if !s.store.RemoveTeacher(id) {
		s.logger.Debug("remove skipped, teacher absent", zap.String("id", id))
		return nil
	}
	s.logger.Info("teacher removed", zap.String("id", id))
	s.metrics.RecordRemoved("teacher")
	notify(ctx, s.publisher, s.logger, events.TeacherRemoved, id)
	return nil
}

// Export renders the filtered directory in format.
func (s *TeacherService) Export(ctx context.Context, filter models.TeacherFilter, format string) (*ExportFile, error) {
	matched := query.Teachers(s.store.Teachers(), filter)
	return s.exports.Render(format, teacherRoster(matched), "teachers")
}
