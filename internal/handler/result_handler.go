package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/pkg/response"
)

type resultService interface {
	Result(ctx context.Context, studentID string) (*models.StudentResult, error)
	Export(ctx context.Context, studentID, format string) (*service.ExportFile, error)
}

// ResultHandler serves result cards.
type ResultHandler struct {
	results resultService
}

// NewResultHandler constructs ResultHandler.
func NewResultHandler(results resultService) *ResultHandler {
	return &ResultHandler{results: results}
}

// Get godoc
// @Summary Student result card
// @Tags Results
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/result [get]
func (h *ResultHandler) Get(c *gin.Context) {
	result, err := h.results.Result(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Export godoc
// @Summary Download a result card
// @Tags Results
// @Produce octet-stream
// @Param id path string true "Student ID"
// @Param format query string false "pdf, csv or xlsx"
// @Success 200 {file} file
// @Router /students/{id}/result/export [get]
func (h *ResultHandler) Export(c *gin.Context) {
	file, err := h.results.Export(c.Request.Context(), c.Param("id"), c.DefaultQuery("format", "pdf"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
