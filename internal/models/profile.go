package models

import "time"

// Student extends a user with academic attributes.
type Student struct {
	ID               int64     `db:"student_id" json:"student_id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	FullName         string    `db:"full_name" json:"full_name"`
	EnrollmentNumber *string   `db:"enrollment_number" json:"enrollment_number,omitempty"`
	CollegeID        *int64    `db:"college_id" json:"college_id,omitempty"`
	Department       *string   `db:"department" json:"department,omitempty"`
	Semester         *int      `db:"semester" json:"semester,omitempty"`
	CGPA             *float64  `db:"cgpa" json:"cgpa,omitempty"`
	Phone            *string   `db:"phone" json:"phone,omitempty"`
	Skills           *string   `db:"skills" json:"skills,omitempty"`
	ResumePath       *string   `db:"resume_path" json:"resume_path,omitempty"`
	ProfilePicPath   *string   `db:"profile_pic_path" json:"profile_pic_path,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// College extends a user with institutional attributes.
type College struct {
	ID                    int64     `db:"college_id" json:"college_id"`
	UserID                int64     `db:"user_id" json:"user_id"`
	CollegeName           string    `db:"college_name" json:"college_name"`
	UniversityAffiliation *string   `db:"university_affiliation" json:"university_affiliation,omitempty"`
	Location              *string   `db:"location" json:"location,omitempty"`
	Accreditation         *string   `db:"accreditation" json:"accreditation,omitempty"`
	ContactEmail          *string   `db:"contact_email" json:"contact_email,omitempty"`
	ContactPhone          *string   `db:"contact_phone" json:"contact_phone,omitempty"`
	Website               *string   `db:"website" json:"website,omitempty"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
}

// Recruiter extends a user with company attributes.
type Recruiter struct {
	ID            int64     `db:"recruiter_id" json:"recruiter_id"`
	UserID        int64     `db:"user_id" json:"user_id"`
	CompanyName   string    `db:"company_name" json:"company_name"`
	Industry      *string   `db:"industry" json:"industry,omitempty"`
	CompanySize   *string   `db:"company_size" json:"company_size,omitempty"`
	Website       *string   `db:"website" json:"website,omitempty"`
	ContactPerson *string   `db:"contact_person" json:"contact_person,omitempty"`
	ContactEmail  *string   `db:"contact_email" json:"contact_email,omitempty"`
	ContactPhone  *string   `db:"contact_phone" json:"contact_phone,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
