package models

// Actor is the staff profile a request acts through.
type Actor struct {
	Role      UserRole
	ProfileID int64
}

// Owners names the recruiter and college a record belongs to.
type Owners struct {
	RecruiterID int64  `db:"recruiter_id"`
	CollegeID   *int64 `db:"college_id"`
}

// Permits reports whether the actor owns the record, recruiters through the
// job and college admins through the student's college.
func (a Actor) Permits(o Owners) bool {
	switch a.Role {
	case RoleRecruiter:
		return a.ProfileID != 0 && o.RecruiterID == a.ProfileID
	case RoleCollegeAdmin:
		return o.CollegeID != nil && *o.CollegeID == a.ProfileID
	}
	return false
}
