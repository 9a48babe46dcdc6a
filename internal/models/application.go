package models

import "time"

// ApplicationStatus tracks an application through review.
type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationReviewed    ApplicationStatus = "reviewed"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationAccepted    ApplicationStatus = "accepted"
)

var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:     {ApplicationReviewed},
	ApplicationReviewed:    {ApplicationShortlisted},
	ApplicationShortlisted: {ApplicationRejected, ApplicationAccepted},
}

// Valid reports whether the status belongs to the closed set.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationReviewed, ApplicationShortlisted, ApplicationRejected, ApplicationAccepted:
		return true
	}
	return false
}

// CanTransitionTo reports whether next directly follows s in the lifecycle.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Application links one student to one job.
type Application struct {
	ID              int64             `db:"application_id" json:"application_id"`
	StudentID       int64             `db:"student_id" json:"student_id"`
	JobID           int64             `db:"job_id" json:"job_id"`
	ApplicationDate time.Time         `db:"application_date" json:"application_date"`
	Status          ApplicationStatus `db:"status" json:"status"`
	CoverLetter     *string           `db:"cover_letter" json:"cover_letter,omitempty"`
	ResumePath      *string           `db:"resume_path" json:"resume_path,omitempty"`
	Feedback        *string           `db:"feedback" json:"feedback,omitempty"`
}

// StudentApplication is an application joined with its job and company.
type StudentApplication struct {
	Application
	Title       string  `db:"title" json:"title"`
	CompanyName string  `db:"company_name" json:"company_name"`
	Location    *string `db:"location" json:"location,omitempty"`
}

// JobApplicant is an application joined with the applying student.
type JobApplicant struct {
	Application
	FullName         string   `db:"full_name" json:"full_name"`
	EnrollmentNumber *string  `db:"enrollment_number" json:"enrollment_number,omitempty"`
	CGPA             *float64 `db:"cgpa" json:"cgpa,omitempty"`
	StudentUserID    int64    `db:"student_user_id" json:"-"`
}

// ApplicationReview is the locked view of an application used during a status change.
type ApplicationReview struct {
	ID            int64             `db:"application_id"`
	Status        ApplicationStatus `db:"status"`
	StudentUserID int64             `db:"student_user_id"`
	RecruiterID   int64             `db:"recruiter_id"`
	JobTitle      string            `db:"title"`
}
