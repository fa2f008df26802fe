package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/models"
)

type dashboardStore interface {
	Students() []models.Student
	Teachers() []models.Teacher
	Catalog() []models.CatalogSubject
}

// DashboardService composes the admin overview.
type DashboardService struct {
	store      dashboardStore
	metrics    *MetricsService
	schoolName string
	logger     *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(store dashboardStore, metrics *MetricsService, schoolName string, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{store: store, metrics: metrics, schoolName: schoolName, logger: logger}
}

// Overview counts the current records. Counts are derived on every call.
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, error) {
	students := s.store.Students()
	active := 0
	for _, st := range students {
		if st.Status == models.StudentStatusActive {
			active++
		}
	}
	resp := &dto.DashboardResponse{
		SchoolName: s.schoolName,
		Counts: dto.DashboardCounts{
			Students:       len(students),
			ActiveStudents: active,
			Teachers:       len(s.store.Teachers()),
			Subjects:       len(s.store.Catalog()),
		},
	}
	if s.metrics != nil {
		resp.System = s.metrics.Snapshot()
	}
	return resp, nil
}
