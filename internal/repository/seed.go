package repository

import (
	"fmt"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// DefaultCatalog is the set of subjects every student is enrolled in.
func DefaultCatalog() []models.CatalogSubject {
	return []models.CatalogSubject{
		{Code: "MATH", Name: "Mathematics", MaxScore: 100, Teacher: "Robert Wilson"},
		{Code: "SCI", Name: "Science", MaxScore: 100, Teacher: "Sarah Davis"},
		{Code: "ENG", Name: "English", MaxScore: 100, Teacher: "Maria Garcia"},
		{Code: "SOC", Name: "Social Studies", MaxScore: 100, Teacher: "James Miller"},
		{Code: "CS", Name: "Computer Science", MaxScore: 50, Teacher: "Sarah Davis"},
		{Code: "PE", Name: "Physical Education", MaxScore: 50, Teacher: "David Thompson"},
	}
}

// demoScores holds per-student marks in catalog order.
var demoScores = map[string][]float64{
	"S10001": {92, 88, 95, 85, 47, 45},
	"S10002": {76, 81, 69, 72, 38, 42},
	"S10003": {58, 62, 71, 66, 30, 40},
	"S10004": {35, 41, 52, 38, 18, 35},
	"S10005": {88, 93, 79, 90, 44, 48},
	"S10006": {22, 30, 41, 28, 12, 30},
}

// SeedDemo loads the demo roster with marks for every catalog subject.
func SeedDemo(s *Store) error {
	students := demoStudents()
	teachers := demoTeachers()
	catalog := s.Catalog()

	subjects := make([]models.Subject, 0, len(students)*len(catalog))
	for _, st := range students {
		marks := demoScores[st.ID]
		for i, c := range catalog {
			sub := models.Subject{
				ID:        fmt.Sprintf("%s-%s", st.ID, c.Code),
				StudentID: st.ID,
				Name:      c.Name,
				MaxScore:  c.MaxScore,
				Teacher:   c.Teacher,
			}
			if i < len(marks) {
				score := marks[i]
				sub.Score = &score
			}
			subjects = append(subjects, sub)
		}
	}
	return s.Seed(students, teachers, subjects)
}

func demoStudents() []models.Student {
	blood := func(v string) *string { return &v }
	return []models.Student{
		{
			ID: "S10001", FirstName: "Emma", LastName: "Johnson", DateOfBirth: "2008-05-15",
			Grade: 10, Section: "A", ContactNumber: "+1 (555) 123-4567", Email: "emma.johnson@example.com",
			Address:  "123 Oak Street, Springdale",
			Guardian: models.Guardian{Name: "Michael Johnson", Relation: "Father", Contact: "+1 (555) 987-6543", Email: "michael.johnson@example.com"},
			Status:   models.StudentStatusActive, AdmissionDate: "2018-08-01", BloodGroup: blood("A+"),
		},
		{
			ID: "S10002", FirstName: "Liam", LastName: "Smith", DateOfBirth: "2007-11-03",
			Grade: 11, Section: "B", ContactNumber: "+1 (555) 234-5678", Email: "liam.smith@example.com",
			Address:  "45 Maple Avenue, Springdale",
			Guardian: models.Guardian{Name: "Jennifer Smith", Relation: "Mother", Contact: "+1 (555) 876-5432", Email: "jennifer.smith@example.com"},
			Status:   models.StudentStatusActive, AdmissionDate: "2017-08-01", BloodGroup: blood("O+"),
		},
		{
			ID: "S10003", FirstName: "Olivia", LastName: "Brown", DateOfBirth: "2009-02-21",
			Grade: 9, Section: "A", ContactNumber: "+1 (555) 345-6789", Email: "olivia.brown@example.com",
			Address:  "78 Pine Road, Springdale",
			Guardian: models.Guardian{Name: "Robert Brown", Relation: "Father", Contact: "+1 (555) 765-4321", Email: "robert.brown@example.com"},
			Status:   models.StudentStatusActive, AdmissionDate: "2019-08-01",
		},
		{
			ID: "S10004", FirstName: "Noah", LastName: "Williams", DateOfBirth: "2008-07-09",
			Grade: 10, Section: "C", ContactNumber: "+1 (555) 456-7890", Email: "noah.williams@example.com",
			Address:  "9 Cedar Lane, Springdale",
			Guardian: models.Guardian{Name: "Patricia Williams", Relation: "Mother", Contact: "+1 (555) 654-3210", Email: "patricia.williams@example.com"},
			Status:   models.StudentStatusInactive, AdmissionDate: "2018-08-01", BloodGroup: blood("B-"),
		},
		{
			ID: "S10005", FirstName: "Ava", LastName: "Martinez", DateOfBirth: "2006-09-30",
			Grade: 12, Section: "A", ContactNumber: "+1 (555) 567-8901", Email: "ava.martinez@example.com",
			Address:  "310 Birch Boulevard, Springdale",
			Guardian: models.Guardian{Name: "Carlos Martinez", Relation: "Father", Contact: "+1 (555) 543-2109", Email: "carlos.martinez@example.com"},
			Status:   models.StudentStatusActive, AdmissionDate: "2016-08-01", BloodGroup: blood("AB+"),
		},
		{
			ID: "S10006", FirstName: "Ethan", LastName: "Taylor", DateOfBirth: "2009-12-12",
			Grade: 9, Section: "D", ContactNumber: "+1 (555) 678-9012", Email: "ethan.taylor@example.com",
			Address:  "66 Elm Court, Springdale",
			Guardian: models.Guardian{Name: "Susan Taylor", Relation: "Mother", Contact: "+1 (555) 432-1098", Email: "susan.taylor@example.com"},
			Status:   models.StudentStatusActive, AdmissionDate: "2019-08-01",
		},
	}
}

func demoTeachers() []models.Teacher {
	return []models.Teacher{
		{
			ID: "T10001", EmployeeID: "EMP2015-101", FirstName: "Robert", LastName: "Wilson",
			Email: "robert.wilson@springdale.edu", Phone: "+1 (555) 111-2222", Designation: "Senior Teacher",
			Department: "Mathematics", Subjects: []string{"Mathematics", "Statistics"},
			Qualifications: []string{"M.Sc. Mathematics", "B.Ed."}, JoinDate: "2015-06-15",
			Address: "12 Hill Street, Springdale",
		},
		{
			ID: "T10002", EmployeeID: "EMP2017-204", FirstName: "Sarah", LastName: "Davis",
			Email: "sarah.davis@springdale.edu", Phone: "+1 (555) 222-3333", Designation: "Head of Department",
			Department: "Science", Subjects: []string{"Science", "Computer Science"},
			Qualifications: []string{"Ph.D. Physics"}, JoinDate: "2017-01-10",
			Address: "4 River Road, Springdale",
		},
		{
			ID: "T10003", EmployeeID: "EMP2018-317", FirstName: "Maria", LastName: "Garcia",
			Email: "maria.garcia@springdale.edu", Phone: "+1 (555) 333-4444", Designation: "Teacher",
			Department: "Languages", Subjects: []string{"English", "Spanish"},
			Qualifications: []string{"M.A. English Literature", "B.Ed."}, JoinDate: "2018-07-01",
			Address: "88 Lake View, Springdale",
		},
		{
			ID: "T10004", EmployeeID: "EMP2016-422", FirstName: "James", LastName: "Miller",
			Email: "james.miller@springdale.edu", Phone: "+1 (555) 444-5555", Designation: "Teacher",
			Department: "Social Studies", Subjects: []string{"Social Studies", "History"},
			Qualifications: []string{"M.A. History"}, JoinDate: "2016-03-21",
			Address: "21 Park Avenue, Springdale",
		},
		{
			ID: "T10005", EmployeeID: "EMP2020-530", FirstName: "David", LastName: "Thompson",
			Email: "david.thompson@springdale.edu", Phone: "+1 (555) 555-6666", Designation: "Sports Coach",
			Department: "Physical Education", Subjects: []string{"Physical Education"},
			Qualifications: []string{"B.P.Ed."}, JoinDate: "2020-09-01",
			Address: "5 Stadium Drive, Springdale",
		},
	}
}
