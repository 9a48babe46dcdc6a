package models

// ApplicationStats summarises a student's applications.
type ApplicationStats struct {
	Total       int `db:"total" json:"total"`
	Accepted    int `db:"accepted" json:"accepted"`
	Shortlisted int `db:"shortlisted" json:"shortlisted"`
}

// JobStats summarises a recruiter's postings.
type JobStats struct {
	TotalJobs  int `db:"total_jobs" json:"total_jobs"`
	ActiveJobs int `db:"active_jobs" json:"active_jobs"`
}

// StudentStats summarises a college's students.
type StudentStats struct {
	TotalStudents int     `db:"total_students" json:"total_students"`
	AverageCGPA   float64 `db:"avg_cgpa" json:"avg_cgpa"`
}

// PlacementStats summarises a college's placements.
type PlacementStats struct {
	TotalPlacements int `db:"total_placements" json:"total_placements"`
}

// DashboardStats is the role-specific dashboard aggregate. Sections that do
// not apply to the role, or whose profile is missing, are nil.
type DashboardStats struct {
	Role         UserRole          `json:"role"`
	Applications *ApplicationStats `json:"applications,omitempty"`
	Jobs         *JobStats         `json:"jobs,omitempty"`
	Students     *StudentStats     `json:"students,omitempty"`
	Placements   *PlacementStats   `json:"placements,omitempty"`
}

// Empty reports whether no section was populated.
func (s DashboardStats) Empty() bool {
	return s.Applications == nil && s.Jobs == nil && s.Students == nil && s.Placements == nil
}
