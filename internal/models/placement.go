package models

import "time"

// PlacementStatus tracks an offer after it has been extended.
type PlacementStatus string

const (
	PlacementOffered  PlacementStatus = "offered"
	PlacementAccepted PlacementStatus = "accepted"
	PlacementJoined   PlacementStatus = "joined"
	PlacementRejected PlacementStatus = "rejected"
)

var placementTransitions = map[PlacementStatus][]PlacementStatus{
	PlacementOffered:  {PlacementAccepted, PlacementRejected},
	PlacementAccepted: {PlacementJoined},
}

// Valid reports whether the status belongs to the closed set.
func (s PlacementStatus) Valid() bool {
	switch s {
	case PlacementOffered, PlacementAccepted, PlacementJoined, PlacementRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether next directly follows s in the lifecycle.
func (s PlacementStatus) CanTransitionTo(next PlacementStatus) bool {
	for _, allowed := range placementTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Placement records the finalized outcome for a student.
type Placement struct {
	ID             int64           `db:"placement_id" json:"placement_id"`
	StudentID      int64           `db:"student_id" json:"student_id"`
	JobID          int64           `db:"job_id" json:"job_id"`
	CollegeID      *int64          `db:"college_id" json:"college_id,omitempty"`
	PlacementDate  *time.Time      `db:"placement_date" json:"placement_date,omitempty"`
	PackageOffered *float64        `db:"package_offered" json:"package_offered,omitempty"`
	JoiningDate    *time.Time      `db:"joining_date" json:"joining_date,omitempty"`
	Status         PlacementStatus `db:"status" json:"status"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// PlacementReportRow is one line of a college placement report.
type PlacementReportRow struct {
	PlacementID      int64           `db:"placement_id"`
	FullName         string          `db:"full_name"`
	EnrollmentNumber *string         `db:"enrollment_number"`
	Department       *string         `db:"department"`
	CompanyName      string          `db:"company_name"`
	Title            string          `db:"title"`
	PackageOffered   *float64        `db:"package_offered"`
	JoiningDate      *time.Time      `db:"joining_date"`
	Status           PlacementStatus `db:"status"`
}

// PlacementLock is the locked view of a placement used during a status change.
type PlacementLock struct {
	Status PlacementStatus `db:"status"`
	Owners
}
