package service

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type fakePlacementRepo struct {
	created []*models.Placement
	locks   map[int64]*models.PlacementLock
}

func (f *fakePlacementRepo) Create(ctx context.Context, p *models.Placement) error {
	for _, existing := range f.created {
		if existing.StudentID == p.StudentID {
			return appErrors.Clone(appErrors.ErrUniqueness, "student already has a placement")
		}
	}
	p.ID = int64(len(f.created) + 1)
	p.Status = models.PlacementOffered
	f.created = append(f.created, p)
	return nil
}

func (f *fakePlacementRepo) Lock(ctx context.Context, tx *sqlx.Tx, placementID int64) (*models.PlacementLock, error) {
	if l, ok := f.locks[placementID]; ok {
		return l, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakePlacementRepo) UpdateStatus(ctx context.Context, tx *sqlx.Tx, placementID int64, status models.PlacementStatus) error {
	f.locks[placementID].Status = status
	return nil
}

func (f *fakePlacementRepo) ListReportForCollege(ctx context.Context, collegeID int64) ([]models.PlacementReportRow, error) {
	return nil, nil
}

type fakeStudentRepo struct {
	byID map[int64]*models.Student
	err  error
}

func (f *fakeStudentRepo) Create(ctx context.Context, s *models.Student) error {
	if f.err != nil {
		return f.err
	}
	s.ID = int64(len(f.byID) + 1)
	f.byID[s.ID] = s
	return nil
}

func (f *fakeStudentRepo) FindByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	for _, s := range f.byID {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeStudentRepo) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, sql.ErrNoRows
}

var (
	acmeRecruiter  = models.Actor{Role: models.RoleRecruiter, ProfileID: 7}
	otherRecruiter = models.Actor{Role: models.RoleRecruiter, ProfileID: 8}
	techCollege    = models.Actor{Role: models.RoleCollegeAdmin, ProfileID: 4}
	otherCollege   = models.Actor{Role: models.RoleCollegeAdmin, ProfileID: 5}
)

func newPlacementFixture(t *testing.T) (*PlacementService, *fakePlacementRepo, sqlmock.Sqlmock) {
	college := int64(4)
	students := &fakeStudentRepo{byID: map[int64]*models.Student{1: {ID: 1, UserID: 10, CollegeID: &college}}}
	jobs := fakeJobLookup{2: {ID: 2, RecruiterID: 7}, 3: {ID: 3, RecruiterID: 7}}
	repo := &fakePlacementRepo{locks: map[int64]*models.PlacementLock{
		1: {Status: models.PlacementOffered, Owners: models.Owners{RecruiterID: 7, CollegeID: &college}},
	}}
	tx, mock := newTxProviderMock(t)
	return NewPlacementService(repo, students, jobs, tx, nil, nil, nil, nil), repo, mock
}

func TestRecordPlacementInheritsCollege(t *testing.T) {
	svc, repo, _ := newPlacementFixture(t)
	ctx := context.Background()

	id, err := svc.Record(ctx, acmeRecruiter, dto.RecordPlacementRequest{StudentID: 1, JobID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.NotNil(t, repo.created[0].CollegeID)
	assert.Equal(t, int64(4), *repo.created[0].CollegeID)

	_, err = svc.Record(ctx, techCollege, dto.RecordPlacementRequest{StudentID: 1, JobID: 3})
	assert.ErrorIs(t, err, appErrors.ErrUniqueness)

	_, err = svc.Record(ctx, acmeRecruiter, dto.RecordPlacementRequest{StudentID: 9, JobID: 3})
	assert.ErrorIs(t, err, appErrors.ErrReferential)

	_, err = svc.Record(ctx, acmeRecruiter, dto.RecordPlacementRequest{StudentID: 1, JobID: 99})
	assert.ErrorIs(t, err, appErrors.ErrReferential)
}

func TestRecordPlacementRequiresOwnership(t *testing.T) {
	svc, repo, _ := newPlacementFixture(t)
	ctx := context.Background()

	for _, actor := range []models.Actor{otherRecruiter, otherCollege, {Role: models.RoleStudent, ProfileID: 7}} {
		_, err := svc.Record(ctx, actor, dto.RecordPlacementRequest{StudentID: 1, JobID: 2})
		assert.ErrorIs(t, err, appErrors.ErrNotFound)
	}
	assert.Empty(t, repo.created)
}

func TestPlacementLifecycle(t *testing.T) {
	svc, repo, mock := newPlacementFixture(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectRollback()
	err := svc.UpdateStatus(ctx, acmeRecruiter, 1, dto.UpdatePlacementStatusRequest{Status: models.PlacementJoined})
	assert.ErrorIs(t, err, appErrors.ErrDomainConstraint)

	for _, next := range []models.PlacementStatus{models.PlacementAccepted, models.PlacementJoined} {
		mock.ExpectBegin()
		mock.ExpectCommit()
		require.NoError(t, svc.UpdateStatus(ctx, techCollege, 1, dto.UpdatePlacementStatusRequest{Status: next}))
	}
	assert.Equal(t, models.PlacementJoined, repo.locks[1].Status)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err = svc.UpdateStatus(ctx, acmeRecruiter, 1, dto.UpdatePlacementStatusRequest{Status: models.PlacementRejected})
	assert.ErrorIs(t, err, appErrors.ErrDomainConstraint)

	mock.ExpectBegin()
	mock.ExpectRollback()
	err = svc.UpdateStatus(ctx, acmeRecruiter, 2, dto.UpdatePlacementStatusRequest{Status: models.PlacementAccepted})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlacementStatusForeignOwnerIsNotFound(t *testing.T) {
	svc, repo, mock := newPlacementFixture(t)
	ctx := context.Background()

	for _, actor := range []models.Actor{otherRecruiter, otherCollege} {
		mock.ExpectBegin()
		mock.ExpectRollback()
		err := svc.UpdateStatus(ctx, actor, 1, dto.UpdatePlacementStatusRequest{Status: models.PlacementAccepted})
		assert.ErrorIs(t, err, appErrors.ErrNotFound)
	}
	assert.Equal(t, models.PlacementOffered, repo.locks[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
