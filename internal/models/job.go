package models

import "time"

// JobType enumerates the kinds of postings recruiters can publish.
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypeInternship JobType = "internship"
	JobTypeContract   JobType = "contract"
)

// Valid reports whether the job type belongs to the closed set.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypeInternship, JobTypeContract:
		return true
	}
	return false
}

// Job is a posting owned by exactly one recruiter.
type Job struct {
	ID             int64      `db:"job_id" json:"job_id"`
	RecruiterID    int64      `db:"recruiter_id" json:"recruiter_id"`
	Title          string     `db:"title" json:"title"`
	Description    *string    `db:"description" json:"description,omitempty"`
	Requirements   *string    `db:"requirements" json:"requirements,omitempty"`
	Location       *string    `db:"location" json:"location,omitempty"`
	JobType        JobType    `db:"job_type" json:"job_type"`
	SalaryRange    *string    `db:"salary_range" json:"salary_range,omitempty"`
	SkillsRequired *string    `db:"skills_required" json:"skills_required,omitempty"`
	PostedDate     time.Time  `db:"posted_date" json:"posted_date"`
	Deadline       *time.Time `db:"deadline" json:"deadline,omitempty"`
	Active         bool       `db:"is_active" json:"is_active"`
}

// JobListing is an active job joined with its recruiter's company name.
type JobListing struct {
	Job
	CompanyName string `db:"company_name" json:"company_name"`
}

// JobFilter narrows job listings. Empty fields do not filter.
type JobFilter struct {
	JobType  JobType `form:"job_type" validate:"omitempty,oneof=full_time internship contract"`
	Location string  `form:"location" validate:"max=128"`
	Skills   string  `form:"skills" validate:"max=128"`
}
