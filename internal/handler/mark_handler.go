package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/pkg/response"
)

type markService interface {
	SaveMarks(ctx context.Context, studentID string, req service.SaveMarksRequest) (*service.SaveMarksResult, error)
	Preview(ctx context.Context, req service.PreviewRequest) (*service.PreviewResult, error)
}

// MarkHandler serves mark entry.
type MarkHandler struct {
	marks markService
}

// NewMarkHandler constructs MarkHandler.
func NewMarkHandler(marks markService) *MarkHandler {
	return &MarkHandler{marks: marks}
}

// Save godoc
// @Summary Save a student's marks
// @Tags Marks
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param payload body service.SaveMarksRequest true "Mark sheet"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/marks [put]
func (h *MarkHandler) Save(c *gin.Context) {
	var req service.SaveMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	result, err := h.marks.SaveMarks(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Preview godoc
// @Summary Grade unsaved marks
// @Tags Marks
// @Accept json
// @Produce json
// @Param payload body service.PreviewRequest true "Entries"
// @Success 200 {object} response.Envelope
// @Router /marks/preview [post]
func (h *MarkHandler) Preview(c *gin.Context) {
	var req service.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}
	result, err := h.marks.Preview(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
