package models

// StudentSkill is a self-declared skill with a 1-10 proficiency.
type StudentSkill struct {
	ID               int64   `db:"skill_id" json:"skill_id"`
	StudentID        int64   `db:"student_id" json:"student_id"`
	SkillName        string  `db:"skill_name" json:"skill_name"`
	ProficiencyLevel int     `db:"proficiency_level" json:"proficiency_level"`
	Certification    *string `db:"certification" json:"certification,omitempty"`
	Verified         bool    `db:"verified" json:"verified"`
}
