package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/grading"
)

func TestResultServiceResult(t *testing.T) {
	svc := NewResultService(seededStore(t), nil, nil)

	res, err := svc.Result(context.Background(), "S10001")
	require.NoError(t, err)
	require.Len(t, res.Rows, 6)
	assert.Equal(t, "Mathematics", res.Rows[0].Subject)
	assert.Equal(t, grading.GradeAPlus, res.Rows[0].Grade)
	assert.Equal(t, 94.0, res.Rows[4].Percentage)
	assert.Equal(t, 452.0, res.Summary.TotalScore)
	assert.Equal(t, 500.0, res.Summary.TotalMax)
	assert.InDelta(t, 90.4, res.Summary.Percentage, 0.0001)
	assert.Equal(t, grading.GradeAPlus, res.Summary.Grade)
	assert.Equal(t, "PASS", res.Verdict)
	assert.Equal(t, "purple", res.Tone)

	failing, err := svc.Result(context.Background(), "S10006")
	require.NoError(t, err)
	assert.Equal(t, grading.GradeF, failing.Summary.Grade)
	assert.Equal(t, "FAIL", failing.Verdict)
}

func TestResultServiceNewStudentIsUnscored(t *testing.T) {
	store := seededStore(t)
	students := newStudentService(store, nil)
	added, err := students.Create(context.Background(), validStudentRequest())
	require.NoError(t, err)

	res, err := NewResultService(store, nil, nil).Result(context.Background(), added.ID)
	require.NoError(t, err)
	require.Len(t, res.Rows, 6)
	assert.Nil(t, res.Rows[0].Score)
	assert.Equal(t, 0.0, res.Summary.TotalScore)
	assert.Equal(t, grading.GradeF, res.Summary.Grade)
}

func TestResultServiceNotFound(t *testing.T) {
	_, err := NewResultService(seededStore(t), nil, nil).Result(context.Background(), "S00000")
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestResultServiceExport(t *testing.T) {
	metrics := NewMetricsService()
	svc := NewResultService(seededStore(t), NewExportService(nil, metrics, nil), nil)

	pdf, err := svc.Export(context.Background(), "S10001", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "Emma_Johnson_Results.pdf", pdf.Filename)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.True(t, bytes.HasPrefix(pdf.Body, []byte("%PDF")))

	file, err := svc.Export(context.Background(), "S10001", "CSV")
	require.NoError(t, err)
	assert.Equal(t, "Emma_Johnson_Results.csv", file.Filename)
	reader := csv.NewReader(bytes.NewReader(file.Body))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mathematics", "Robert Wilson", "100", "92", "92.00%", "A+", "Pass"}, records[1])
	assert.Equal(t, []string{"Result", "PASS"}, records[len(records)-1])

	_, err = svc.Export(context.Background(), "S10001", "docx")
	assert.True(t, errors.Is(err, appErrors.ErrUnsupportedFormat))
}
