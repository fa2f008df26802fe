package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
)

// pageParams reads page and limit. A missing or malformed limit disables
// pagination.
func pageParams(c *gin.Context) (page, size int) {
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		size = v
	}
	return page, size
}

func studentFilter(c *gin.Context) (models.StudentFilter, error) {
	filter := models.StudentFilter{
		Search:  strings.TrimSpace(c.Query("search")),
		Section: strings.TrimSpace(c.Query("section")),
		Status:  models.StudentStatus(strings.TrimSpace(c.Query("status"))),
	}
	if raw := strings.TrimSpace(c.Query("grade")); raw != "" {
		grade, err := strconv.Atoi(raw)
		if err != nil {
			return filter, appErrors.Clone(appErrors.ErrValidation, "grade must be a number")
		}
		filter.Grade = grade
	}
	filter.Page, filter.PageSize = pageParams(c)
	return filter, nil
}

func teacherFilter(c *gin.Context) models.TeacherFilter {
	filter := models.TeacherFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		Department: strings.TrimSpace(c.Query("department")),
	}
	filter.Page, filter.PageSize = pageParams(c)
	return filter
}

func invalidPayload(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
}
