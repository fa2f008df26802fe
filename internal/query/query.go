// Package query holds the directory filter rules shared by every listing.
// Filtering is stateless: results are always re-derived from the full
// collection and the active filter values.
package query

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// Students returns the students matching filter, preserving input order.
func Students(students []models.Student, filter models.StudentFilter) []models.Student {
	term := fold(strings.TrimSpace(filter.Search))
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		if matchStudent(s, filter.Grade, filter.Section, filter.Status, term) {
			out = append(out, s)
		}
	}
	return out
}

// Teachers returns the teachers matching filter, preserving input order.
func Teachers(teachers []models.Teacher, filter models.TeacherFilter) []models.Teacher {
	term := fold(strings.TrimSpace(filter.Search))
	out := make([]models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if matchTeacher(t, filter.Department, term) {
			out = append(out, t)
		}
	}
	return out
}

// matchStudent combines the free-text match with every active categorical
// filter. term must already be case folded.
func matchStudent(s models.Student, grade int, section string, status models.StudentStatus, term string) bool {
	if grade != 0 && s.Grade != grade {
		return false
	}
	if section != "" && s.Section != section {
		return false
	}
	if status != "" && s.Status != status {
		return false
	}
	return containsAny(term, s.FullName(), s.ID)
}

// matchTeacher matches name, identifier, employee code or any subject taught,
// then the department filter. term must already be case folded.
func matchTeacher(t models.Teacher, department, term string) bool {
	if department != "" && t.Department != department {
		return false
	}
	fields := make([]string, 0, len(t.Subjects)+3)
	fields = append(fields, t.FullName(), t.ID, t.EmployeeID)
	fields = append(fields, t.Subjects...)
	return containsAny(term, fields...)
}

// StudentOptions lists distinct grades (ascending) and sections (sorted).
func StudentOptions(students []models.Student) models.StudentFilterOptions {
	grades := make(map[int]struct{})
	sections := make(map[string]struct{})
	for _, s := range students {
		grades[s.Grade] = struct{}{}
		sections[s.Section] = struct{}{}
	}
	return models.StudentFilterOptions{
		Grades:   sortedInts(grades),
		Sections: sortedStrings(sections),
	}
}

// TeacherOptions lists distinct departments in sorted order.
func TeacherOptions(teachers []models.Teacher) models.TeacherFilterOptions {
	departments := make(map[string]struct{})
	for _, t := range teachers {
		departments[t.Department] = struct{}{}
	}
	return models.TeacherFilterOptions{Departments: sortedStrings(departments)}
}

func containsAny(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(fold(f), term) {
			return true
		}
	}
	return false
}

func fold(s string) string {
	if s == "" {
		return s
	}
	return cases.Fold().String(s)
}
