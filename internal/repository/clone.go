package repository

import "github.com/noah-isme/school-admin-api/internal/models"

func cloneStudent(s models.Student) models.Student {
	s.Avatar = cloneString(s.Avatar)
	s.BloodGroup = cloneString(s.BloodGroup)
	return s
}

func cloneTeacher(t models.Teacher) models.Teacher {
	if t.Subjects != nil {
		t.Subjects = append([]string{}, t.Subjects...)
	}
	if t.Qualifications != nil {
		t.Qualifications = append([]string{}, t.Qualifications...)
	}
	t.Avatar = cloneString(t.Avatar)
	return t
}

func cloneSubject(s models.Subject) models.Subject {
	if s.Score != nil {
		v := *s.Score
		s.Score = &v
	}
	return s
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
