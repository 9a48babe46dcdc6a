package dto

// AddSkillRequest declares a skill on a student profile.
type AddSkillRequest struct {
	SkillName        string `json:"skill_name" validate:"required,max=128"`
	ProficiencyLevel int    `json:"proficiency_level" validate:"required,min=1,max=10"`
	Certification    string `json:"certification" validate:"max=256"`
}
