package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type fakeCollegeRepo struct {
	byUser map[int64]*models.College
	err    error
}

func (f *fakeCollegeRepo) Create(ctx context.Context, c *models.College) error {
	if f.err != nil {
		return f.err
	}
	c.ID = int64(len(f.byUser) + 1)
	f.byUser[c.UserID] = c
	return nil
}

func (f *fakeCollegeRepo) FindByUserID(ctx context.Context, userID int64) (*models.College, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.byUser[userID]; ok {
		return c, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeCollegeRepo) FindByID(ctx context.Context, id int64) (*models.College, error) {
	for _, c := range f.byUser {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, sql.ErrNoRows
}

type fakeRecruiterRepo struct {
	byUser map[int64]*models.Recruiter
}

func (f *fakeRecruiterRepo) Create(ctx context.Context, r *models.Recruiter) error {
	r.ID = int64(len(f.byUser) + 1)
	f.byUser[r.UserID] = r
	return nil
}

func (f *fakeRecruiterRepo) FindByUserID(ctx context.Context, userID int64) (*models.Recruiter, error) {
	if r, ok := f.byUser[userID]; ok {
		return r, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeRecruiterRepo) FindByID(ctx context.Context, id int64) (*models.Recruiter, error) {
	for _, r := range f.byUser {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, sql.ErrNoRows
}

func newProfileFixture() (*ProfileService, *fakeStudentRepo, *fakeCollegeRepo, *fakeRecruiterRepo) {
	students := &fakeStudentRepo{byID: map[int64]*models.Student{}}
	colleges := &fakeCollegeRepo{byUser: map[int64]*models.College{}}
	recruiters := &fakeRecruiterRepo{byUser: map[int64]*models.Recruiter{}}
	return NewProfileService(students, colleges, recruiters, nil, nil, nil), students, colleges, recruiters
}

func validStudentRequest() dto.CreateStudentRequest {
	return dto.CreateStudentRequest{
		FullName: "Alice", EnrollmentNumber: "EN-1", Department: "CSE", Semester: 6, Phone: "555",
	}
}

func TestProfileLookupsReturnNilWhenAbsent(t *testing.T) {
	svc, _, _, _ := newProfileFixture()
	ctx := context.Background()

	s, err := svc.StudentByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, s)
	c, err := svc.CollegeByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, c)
	r, err := svc.RecruiterByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestCreateStudentThenLookup(t *testing.T) {
	svc, _, _, _ := newProfileFixture()
	ctx := context.Background()

	id, err := svc.CreateStudent(ctx, 10, validStudentRequest())
	require.NoError(t, err)

	s, err := svc.StudentByUserID(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, id, s.ID)
	require.NotNil(t, s.EnrollmentNumber)
	assert.Equal(t, "EN-1", *s.EnrollmentNumber)
	assert.Nil(t, s.Skills)
}

func TestCreateStudentPropagatesStoreKinds(t *testing.T) {
	svc, students, _, _ := newProfileFixture()
	students.err = appErrors.Clone(appErrors.ErrReferential, "user already owns a student profile")

	_, err := svc.CreateStudent(context.Background(), 10, validStudentRequest())
	assert.ErrorIs(t, err, appErrors.ErrReferential)
}

func TestCreateCollegeValidation(t *testing.T) {
	svc, _, colleges, _ := newProfileFixture()

	_, err := svc.CreateCollege(context.Background(), 2, dto.CreateCollegeRequest{CollegeName: "IIT", Location: "Delhi", ContactEmail: "not-an-email", ContactPhone: "1"})
	assert.ErrorIs(t, err, appErrors.ErrDomainConstraint)
	assert.Empty(t, colleges.byUser)
}

func TestProfileLookupWrapsUnknownErrors(t *testing.T) {
	svc, _, colleges, _ := newProfileFixture()
	colleges.err = sql.ErrConnDone

	_, err := svc.CollegeByUserID(context.Background(), 1)
	assert.ErrorIs(t, err, appErrors.ErrInternal)
}
