package models

// StudentStatus is the enrollment state of a student.
type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "Active"
	StudentStatusInactive StudentStatus = "Inactive"
)

// Valid reports whether s is one of the defined statuses.
func (s StudentStatus) Valid() bool {
	return s == StudentStatusActive || s == StudentStatusInactive
}

// Sections lists the classroom sections a student can be placed in.
var Sections = []string{"A", "B", "C", "D"}

// Guardian is the contact responsible for a student.
type Guardian struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Contact  string `json:"contact"`
	Email    string `json:"email"`
}

// Student represents a learner registered in the school.
type Student struct {
	ID            string        `json:"id"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	DateOfBirth   string        `json:"date_of_birth"`
	Grade         int           `json:"grade"`
	Section       string        `json:"section"`
	ContactNumber string        `json:"contact_number"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	Guardian      Guardian      `json:"guardian"`
	Status        StudentStatus `json:"status"`
	AdmissionDate string        `json:"admission_date"`
	Avatar        *string       `json:"avatar,omitempty"`
	BloodGroup    *string       `json:"blood_group,omitempty"`
}

// FullName composes the display name used in listings and search.
func (s Student) FullName() string {
	return joinName(s.FirstName, s.LastName)
}

// StudentFilter encapsulates allowed search parameters for listing students.
// Zero values leave a criterion unset.
type StudentFilter struct {
	Search   string
	Grade    int
	Section  string
	Status   StudentStatus
	Page     int
	PageSize int
}

// StudentFilterOptions lists the distinct values available for the directory filters.
type StudentFilterOptions struct {
	Grades   []int    `json:"grades"`
	Sections []string `json:"sections"`
}
