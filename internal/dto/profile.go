package dto

// CreateStudentRequest carries the attributes of a new student profile.
type CreateStudentRequest struct {
	FullName         string   `json:"full_name" validate:"required,max=128"`
	EnrollmentNumber string   `json:"enrollment_number" validate:"required,max=64"`
	CollegeID        *int64   `json:"college_id" validate:"omitempty,gt=0"`
	Department       string   `json:"department" validate:"required,max=128"`
	Semester         int      `json:"semester" validate:"required,min=1,max=12"`
	CGPA             *float64 `json:"cgpa" validate:"omitempty,min=0,max=10"`
	Phone            string   `json:"phone" validate:"required,max=32"`
	Skills           string   `json:"skills" validate:"max=1024"`
}

// CreateCollegeRequest carries the attributes of a new college profile.
type CreateCollegeRequest struct {
	CollegeName           string `json:"college_name" validate:"required,max=256"`
	UniversityAffiliation string `json:"university_affiliation" validate:"max=256"`
	Location              string `json:"location" validate:"required,max=256"`
	Accreditation         string `json:"accreditation" validate:"max=64"`
	ContactEmail          string `json:"contact_email" validate:"required,email"`
	ContactPhone          string `json:"contact_phone" validate:"required,max=32"`
	Website               string `json:"website" validate:"omitempty,url"`
}

// CreateRecruiterRequest carries the attributes of a new recruiter profile.
type CreateRecruiterRequest struct {
	CompanyName   string `json:"company_name" validate:"required,max=256"`
	Industry      string `json:"industry" validate:"max=128"`
	CompanySize   string `json:"company_size" validate:"max=32"`
	Website       string `json:"website" validate:"omitempty,url"`
	ContactPerson string `json:"contact_person" validate:"required,max=128"`
	ContactEmail  string `json:"contact_email" validate:"required,email"`
	ContactPhone  string `json:"contact_phone" validate:"required,max=32"`
}
