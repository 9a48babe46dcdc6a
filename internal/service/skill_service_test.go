package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type fakeSkillRepo struct {
	skills []models.StudentSkill
}

func (f *fakeSkillRepo) Create(ctx context.Context, skill *models.StudentSkill) error {
	skill.ID = int64(len(f.skills) + 1)
	f.skills = append(f.skills, *skill)
	return nil
}

func (f *fakeSkillRepo) ListByStudent(ctx context.Context, studentID int64) ([]models.StudentSkill, error) {
	return nil, nil
}

func TestSkillProficiencyBounds(t *testing.T) {
	repo := &fakeSkillRepo{}
	svc := NewSkillService(repo, nil)
	ctx := context.Background()

	for _, level := range []int{0, 11} {
		_, err := svc.Add(ctx, 1, dto.AddSkillRequest{SkillName: "Go", ProficiencyLevel: level})
		assert.ErrorIs(t, err, appErrors.ErrDomainConstraint)
	}

	skill, err := svc.Add(ctx, 1, dto.AddSkillRequest{SkillName: "Go", ProficiencyLevel: 10})
	require.NoError(t, err)
	assert.False(t, skill.Verified)
	assert.Nil(t, skill.Certification)
	assert.Len(t, repo.skills, 1)

	skills, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, skills)
}
