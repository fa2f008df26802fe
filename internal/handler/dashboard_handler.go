package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/pkg/grading"
	"github.com/noah-isme/school-admin-api/pkg/response"
)

type dashboardService interface {
	Overview(ctx context.Context) (*dto.DashboardResponse, error)
}

// DashboardHandler exposes dashboard endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(svc dashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Overview godoc
// @Summary Admin dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	resp, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// GradingScale godoc
// @Summary Letter grade thresholds
// @Tags Results
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /grading/scale [get]
func GradingScale(c *gin.Context) {
	response.JSON(c, http.StatusOK, grading.Scale(), nil, map[string]interface{}{
		"pass_mark": grading.PassMark,
	})
}
