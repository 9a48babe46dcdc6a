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

type fakeDashboardRepo struct {
	calls int
}

func (f *fakeDashboardRepo) ApplicationStats(ctx context.Context, studentID int64) (*models.ApplicationStats, error) {
	f.calls++
	return &models.ApplicationStats{Total: 3, Accepted: 1, Shortlisted: 1}, nil
}

func (f *fakeDashboardRepo) JobStats(ctx context.Context, recruiterID int64) (*models.JobStats, error) {
	f.calls++
	return &models.JobStats{TotalJobs: 4, ActiveJobs: 2}, nil
}

func (f *fakeDashboardRepo) StudentStats(ctx context.Context, collegeID int64) (*models.StudentStats, error) {
	f.calls++
	return &models.StudentStats{TotalStudents: 10, AverageCGPA: 8.1}, nil
}

func (f *fakeDashboardRepo) PlacementStats(ctx context.Context, collegeID int64) (*models.PlacementStats, error) {
	f.calls++
	return &models.PlacementStats{TotalPlacements: 6}, nil
}

func newDashboardFixture(cache *CacheService) (*DashboardService, *fakeDashboardRepo, *ProfileService) {
	profiles, _, _, _ := newProfileFixture()
	profiles.cache = cache
	repo := &fakeDashboardRepo{}
	svc := NewDashboardService(DashboardServiceParams{
		Repo:     repo,
		Profiles: profiles,
		Cache:    cache,
		Metrics:  NewMetricsService(),
	})
	return svc, repo, profiles
}

func TestDashboardEmptyWithoutProfile(t *testing.T) {
	svc, repo, _ := newDashboardFixture(nil)

	for _, role := range []models.UserRole{models.RoleCollegeAdmin, models.RoleStudent, models.RoleRecruiter, models.RoleObserver} {
		stats, err := svc.Stats(context.Background(), 9, role)
		require.NoError(t, err)
		assert.Equal(t, role, stats.Role)
		assert.True(t, stats.Empty())
	}
	assert.Zero(t, repo.calls)
}

func TestDashboardRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newDashboardFixture(nil)
	_, err := svc.Stats(context.Background(), 1, "admin")
	assert.ErrorIs(t, err, appErrors.ErrDomainConstraint)
}

func TestDashboardStudentStatsAreCached(t *testing.T) {
	cache := newMemoryCache()
	svc, repo, profiles := newDashboardFixture(newTestCache(cache))
	ctx := context.Background()
	_, err := profiles.CreateStudent(ctx, 5, validStudentRequest())
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, 5, models.RoleStudent)
	require.NoError(t, err)
	require.NotNil(t, stats.Applications)
	assert.Equal(t, 3, stats.Applications.Total)
	assert.Nil(t, stats.Jobs)
	assert.Contains(t, cache.entries, "dashboard:student:5")

	again, err := svc.Stats(ctx, 5, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, stats, again)
	assert.Equal(t, 1, repo.calls)
}

func TestDashboardCollegeStats(t *testing.T) {
	svc, _, profiles := newDashboardFixture(nil)
	ctx := context.Background()
	colleges := profiles.colleges.(*fakeCollegeRepo)
	colleges.byUser[2] = &models.College{ID: 7, UserID: 2, CollegeName: "Tech"}

	stats, err := svc.Stats(ctx, 2, models.RoleCollegeAdmin)
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Students.TotalStudents)
	assert.InDelta(t, 8.1, stats.Students.AverageCGPA, 1e-9)
	assert.Equal(t, 6, stats.Placements.TotalPlacements)
	assert.Nil(t, stats.Applications)
}

func TestDashboardReflectsProfileCreatedAfterFirstVisit(t *testing.T) {
	cache := newMemoryCache()
	svc, _, profiles := newDashboardFixture(newTestCache(cache))
	ctx := context.Background()

	before, err := svc.Stats(ctx, 2, models.RoleCollegeAdmin)
	require.NoError(t, err)
	assert.True(t, before.Empty())
	assert.NotContains(t, cache.entries, "dashboard:college_admin:2")

	_, err = profiles.CreateCollege(ctx, 2, dto.CreateCollegeRequest{
		CollegeName: "Tech", Location: "Pune", ContactEmail: "admin@tech.edu", ContactPhone: "555",
	})
	require.NoError(t, err)

	after, err := svc.Stats(ctx, 2, models.RoleCollegeAdmin)
	require.NoError(t, err)
	require.NotNil(t, after.Students)
	require.NotNil(t, after.Placements)
	assert.Equal(t, 10, after.Students.TotalStudents)
}

func TestProfileCreateInvalidatesDashboardCache(t *testing.T) {
	cache := newMemoryCache()
	_, _, profiles := newDashboardFixture(newTestCache(cache))
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "dashboard:recruiter:3", models.DashboardStats{Role: models.RoleRecruiter}, 0))

	_, err := profiles.CreateRecruiter(ctx, 3, dto.CreateRecruiterRequest{
		CompanyName: "Acme", ContactPerson: "Bo", ContactEmail: "bo@acme.com", ContactPhone: "555",
	})
	require.NoError(t, err)
	assert.Empty(t, cache.entries)
}
