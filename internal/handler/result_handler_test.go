package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
)

type fakeResultService struct {
	format string
}

func (f *fakeResultService) Result(_ context.Context, id string) (*models.StudentResult, error) {
	if id != "S10001" {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &models.StudentResult{Student: models.Student{ID: id}, Verdict: "PASS"}, nil
}

func (f *fakeResultService) Export(_ context.Context, id, format string) (*service.ExportFile, error) {
	f.format = format
	return &service.ExportFile{Filename: "Emma_Johnson_Results.pdf", ContentType: "application/pdf", Body: []byte("%PDF-1.3")}, nil
}

func TestResultHandlerGet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, rec := newGinContext(http.MethodGet, "/students/S10001/result", nil)
	c.Params = gin.Params{{Key: "id", Value: "S10001"}}
	NewResultHandler(&fakeResultService{}).Get(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PASS", decodeEnvelope(t, rec).Data["verdict"])

	c, rec = newGinContext(http.MethodGet, "/students/S9/result", nil)
	c.Params = gin.Params{{Key: "id", Value: "S9"}}
	NewResultHandler(&fakeResultService{}).Get(c)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResultHandlerExportDefaultsToPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeResultService{}
	c, rec := newGinContext(http.MethodGet, "/students/S10001/result/export", nil)
	c.Params = gin.Params{{Key: "id", Value: "S10001"}}
	NewResultHandler(svc).Export(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pdf", svc.format)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Emma_Johnson_Results.pdf"`, rec.Header().Get("Content-Disposition"))
}
