package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

// SkillRepository stores student skills.
type SkillRepository struct {
	db *sqlx.DB
}

// NewSkillRepository constructs a SkillRepository.
func NewSkillRepository(db *sqlx.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

// Create inserts a skill for a student.
func (r *SkillRepository) Create(ctx context.Context, skill *models.StudentSkill) error {
	const query = `INSERT INTO student_skills (student_id, skill_name, proficiency_level, certification)
		VALUES ($1, $2, $3, $4) RETURNING skill_id, verified`
	row := r.db.QueryRowxContext(ctx, query, skill.StudentID, skill.SkillName, skill.ProficiencyLevel, skill.Certification)
	if err := row.Scan(&skill.ID, &skill.Verified); err != nil {
		return translate(err, "create skill")
	}
	return nil
}

// ListByStudent returns a student's skills by descending proficiency.
func (r *SkillRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentSkill, error) {
	const query = `SELECT skill_id, student_id, skill_name, proficiency_level, certification, verified
		FROM student_skills WHERE student_id = $1 ORDER BY proficiency_level DESC, skill_name`
	var skills []models.StudentSkill
	if err := r.db.SelectContext(ctx, &skills, query, studentID); err != nil {
		return nil, translate(err, "list skills")
	}
	return skills, nil
}
