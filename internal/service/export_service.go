package service

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/export"
)

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type datasetRenderer interface {
	Render(format string, data export.Dataset, basename string) (*ExportFile, error)
}

// ExportService turns datasets into downloadable files.
type ExportService struct {
	renderers export.Registry
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewExportService constructs an ExportService. A nil registry falls back to
// the default renderers without a PDF header.
func NewExportService(renderers export.Registry, metrics *MetricsService, logger *zap.Logger) *ExportService {
	if renderers == nil {
		renderers = export.NewRegistry("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{renderers: renderers, metrics: metrics, logger: logger}
}

// Render encodes data in format and names the file basename.<ext>.
func (s *ExportService) Render(format string, data export.Dataset, basename string) (*ExportFile, error) {
	renderer, ok := s.renderers.Lookup(format)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", format))
	}
	body, err := renderer.Render(data)
	if err != nil {
		s.logger.Error("render export", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	s.metrics.RecordExport(renderer.Extension())
	return &ExportFile{
		Filename:    basename + "." + renderer.Extension(),
		ContentType: renderer.ContentType(),
		Body:        body,
	}, nil
}

func studentRoster(students []models.Student) export.Dataset {
	data := export.Dataset{
		Title:   "Students",
		Headers: []string{"ID", "Name", "Grade", "Section", "Status", "Email", "Contact", "Guardian", "Admission Date"},
		Rows:    make([][]string, 0, len(students)),
	}
	for _, s := range students {
		data.Rows = append(data.Rows, []string{
			s.ID, s.FullName(), strconv.Itoa(s.Grade), s.Section, string(s.Status),
			s.Email, s.ContactNumber, s.Guardian.Name, s.AdmissionDate,
		})
	}
	return data
}

func teacherRoster(teachers []models.Teacher) export.Dataset {
	data := export.Dataset{
		Title:   "Teachers",
		Headers: []string{"ID", "Employee ID", "Name", "Department", "Designation", "Subjects", "Email", "Phone", "Join Date"},
		Rows:    make([][]string, 0, len(teachers)),
	}
	for _, t := range teachers {
		data.Rows = append(data.Rows, []string{
			t.ID, t.EmployeeID, t.FullName(), t.Department, t.Designation,
			strings.Join(t.Subjects, ", "), t.Email, t.Phone, t.JoinDate,
		})
	}
	return data
}

func resultCard(r *models.StudentResult) export.Dataset {
	st := r.Student
	data := export.Dataset{
		Title: "Student Result Card",
		Meta: []export.Field{
			{Label: "Student", Value: st.FullName()},
			{Label: "Student ID", Value: st.ID},
			{Label: "Class", Value: fmt.Sprintf("Grade %d - Section %s", st.Grade, st.Section)},
		},
		Headers: []string{"Subject", "Teacher", "Max Marks", "Marks", "Percentage", "Grade", "Status"},
		Rows:    make([][]string, 0, len(r.Rows)),
		Summary: []export.Field{
			{Label: "Total Marks", Value: fmt.Sprintf("%s / %s", number(r.Summary.TotalScore), number(r.Summary.TotalMax))},
			{Label: "Percentage", Value: percent(r.Summary.Percentage)},
			{Label: "Grade", Value: string(r.Summary.Grade)},
			{Label: "Result", Value: r.Verdict},
		},
	}
	for _, row := range r.Rows {
		marks := "-"
		if row.Score != nil {
			marks = number(*row.Score)
		}
		status := "Fail"
		if row.Passing {
			status = "Pass"
		}
		data.Rows = append(data.Rows, []string{
			row.Subject, row.Teacher, number(row.MaxScore), marks, percent(row.Percentage), string(row.Grade), status,
		})
	}
	return data
}

func resultFilename(st models.Student) string {
	return fmt.Sprintf("%s_%s_Results", fileSafe(st.FirstName), fileSafe(st.LastName))
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(s))
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}
