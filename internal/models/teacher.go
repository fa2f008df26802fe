package models

// Departments enumerates the academic departments a teacher can belong to.
var Departments = []string{
	"Mathematics",
	"Science",
	"Languages",
	"Social Studies",
	"Physical Education",
}

// Teacher represents an instructor record.
type Teacher struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Designation    string   `json:"designation"`
	Department     string   `json:"department"`
	Subjects       []string `json:"subjects"`
	Qualifications []string `json:"qualifications"`
	JoinDate       string   `json:"join_date"`
	Address        string   `json:"address"`
	Avatar         *string  `json:"avatar,omitempty"`
}

// FullName composes the display name used in listings and search.
func (t Teacher) FullName() string {
	return joinName(t.FirstName, t.LastName)
}

// TeacherFilter captures filtering options for listing teachers.
type TeacherFilter struct {
	Search     string
	Department string
	Page       int
	PageSize   int
}

// TeacherFilterOptions lists the distinct departments present in the directory.
type TeacherFilterOptions struct {
	Departments []string `json:"departments"`
}
