package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/events"
)

func validTeacherRequest() CreateTeacherRequest {
	return CreateTeacherRequest{
		FirstName:   "Grace",
		LastName:    "Hopper",
		Email:       "grace.hopper@springdale.edu",
		Phone:       "+1 (555) 777-8888",
		Designation: "Teacher",
		Department:  "Science",
		Subjects:    []string{"Computer Science"},
		JoinDate:    "2024-08-15",
		Address:     "3 Harbor Way",
	}
}

func TestTeacherServiceCreate(t *testing.T) {
	store := seededStore(t)
	pub := &recordingPublisher{}
	svc := NewTeacherService(TeacherServiceParams{Store: store, Publisher: pub})

	teacher, err := svc.Create(context.Background(), validTeacherRequest())
	require.NoError(t, err)
	assert.Regexp(t, `^T\d{5}$`, teacher.ID)
	assert.Regexp(t, `^EMP2024-\d{3}$`, teacher.EmployeeID)
	assert.Equal(t, []string{}, teacher.Qualifications)
	assert.Equal(t, []events.Type{events.TeacherAdded}, pub.types())

	found, _, err := svc.List(context.Background(), models.TeacherFilter{Search: "computer"})
	require.NoError(t, err)
	ids := make([]string, 0, len(found))
	for _, f := range found {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"T10002", teacher.ID}, ids)
}

func TestTeacherServiceCreateRejectsUnknownDepartment(t *testing.T) {
	svc := NewTeacherService(TeacherServiceParams{Store: seededStore(t)})
	req := validTeacherRequest()
	req.Department = "Astrology"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "department must be a known department", appErr.Details["department"])
}

func TestTeacherServiceGetAndRemove(t *testing.T) {
	store := seededStore(t)
	svc := NewTeacherService(TeacherServiceParams{Store: store})

	teacher, err := svc.Get(context.Background(), "T10003")
	require.NoError(t, err)
	assert.Equal(t, "Maria Garcia", teacher.FullName())

	require.NoError(t, svc.Remove(context.Background(), "T10003"))
	_, err = svc.Get(context.Background(), "T10003")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))

	require.NoError(t, svc.Remove(context.Background(), "T99999"))
	assert.Len(t, store.Teachers(), 4)
}

func TestTeacherServiceFiltersAndExport(t *testing.T) {
	store := seededStore(t)
	svc := NewTeacherService(TeacherServiceParams{Store: store})

	opts := svc.Filters(context.Background())
	assert.Equal(t, []string{"Languages", "Mathematics", "Physical Education", "Science", "Social Studies"}, opts.Departments)

	file, err := svc.Export(context.Background(), models.TeacherFilter{Department: "Science"}, "xlsx")
	require.NoError(t, err)
	assert.Equal(t, "teachers.xlsx", file.Filename)
	assert.NotEmpty(t, file.Body)
}

var _ teacherStore = (*repository.Store)(nil)
