package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/repository"
	"github.com/noah-isme/school-admin-api/pkg/config"
)

type envelope struct {
	Data       json.RawMessage        `json:"data"`
	Error      map[string]interface{} `json:"error"`
	Pagination map[string]interface{} `json:"pagination"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := repository.NewStore(
		repository.WithIDGenerator(repository.NewRandomIDGenerator(99)),
		repository.WithCatalog(repository.DefaultCatalog()),
	)
	require.NoError(t, repository.SeedDemo(store))
	cfg := &config.Config{
		Env:       config.EnvDevelopment,
		APIPrefix: "/api/v1",
		School:    config.SchoolConfig{Name: "Springdale Public School"},
		Metrics:   config.MetricsConfig{Enabled: true},
		Import:    config.ImportConfig{MaxFileSizeBytes: 1 << 20},
	}
	return New(cfg, store, nil, nil)
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestRouterStudentLifecycle(t *testing.T) {
	r := newTestRouter(t)

	rec, env := do(t, r, http.MethodPost, "/api/v1/students", map[string]interface{}{
		"first_name": "Mia", "last_name": "Chen", "date_of_birth": "2010-04-02", "grade": 8, "section": "B",
		"contact_number": "555", "email": "mia@example.com", "address": "1 Main",
		"guardian": map[string]string{"name": "Li", "relation": "Mother", "contact": "556", "email": "li@example.com"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))

	rec, env = do(t, r, http.MethodGet, "/api/v1/students/"+created.ID+"/result", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var result struct {
		Subjects []struct {
			SubjectID string  `json:"subject_id"`
			MaxScore  float64 `json:"max_score"`
		} `json:"subjects"`
		Verdict string `json:"verdict"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result.Subjects, 6)
	assert.Equal(t, "FAIL", result.Verdict)

	marks := make([]map[string]interface{}, 0, len(result.Subjects))
	for _, s := range result.Subjects {
		marks = append(marks, map[string]interface{}{"subject_id": s.SubjectID, "score": s.MaxScore})
	}
	rec, _ = do(t, r, http.MethodPut, fmt.Sprintf("/api/v1/students/%s/marks", created.ID), map[string]interface{}{"marks": marks})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, env = do(t, r, http.MethodGet, "/api/v1/students/"+created.ID+"/result", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "PASS", result.Verdict)

	rec, _ = do(t, r, http.MethodGet, "/api/v1/students/"+created.ID+"/result/export?format=xlsx", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="Mia_Chen_Results.xlsx"`, rec.Header().Get("Content-Disposition"))

	rec, _ = do(t, r, http.MethodDelete, "/api/v1/students/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec, _ = do(t, r, http.MethodDelete, "/api/v1/students/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, env = do(t, r, http.MethodGet, "/api/v1/students/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", env.Error["code"])
}

func TestRouterDirectoryAndProbes(t *testing.T) {
	r := newTestRouter(t)

	rec, env := do(t, r, http.MethodGet, "/api/v1/teachers?department=Science&limit=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), env.Pagination["total_count"])

	rec, _ = do(t, r, http.MethodGet, "/api/v1/students/filters", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, r, http.MethodGet, "/api/v1/grading/scale", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestRouterStudentListHugePage(t *testing.T) {
	r := newTestRouter(t)

	rec, env := do(t, r, http.MethodGet, "/api/v1/students?page=9223372036854775807&limit=2", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, "[]", string(env.Data))
	assert.Equal(t, float64(6), env.Pagination["total_count"])
}
