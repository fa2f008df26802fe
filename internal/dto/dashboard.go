package dto

// DashboardCounts holds the headline numbers of the admin dashboard.
type DashboardCounts struct {
	Students       int `json:"students"`
	ActiveStudents int `json:"active_students"`
	Teachers       int `json:"teachers"`
	Subjects       int `json:"subjects"`
}

// DashboardResponse is the payload of GET /dashboard.
type DashboardResponse struct {
	SchoolName string          `json:"school_name"`
	Counts     DashboardCounts `json:"counts"`
	System     interface{}     `json:"system,omitempty"`
}
