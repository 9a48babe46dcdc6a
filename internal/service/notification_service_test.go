package service

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/placement-api/internal/dto"
	"github.com/noah-isme/placement-api/internal/models"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type fakeNotificationRepo struct {
	items    []*models.Notification
	audience map[models.Actor][]int64
}

func (f *fakeNotificationRepo) Create(ctx context.Context, exec sqlx.ExtContext, n *models.Notification) error {
	n.ID = int64(len(f.items) + 1)
	f.items = append(f.items, n)
	return nil
}

func (f *fakeNotificationRepo) List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(f.items) - 1; i >= 0; i-- {
		n := f.items[i]
		if n.UserID != userID || (unreadOnly && n.Read) {
			continue
		}
		out = append(out, *n)
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, userID, notificationID int64) (bool, error) {
	for _, n := range f.items {
		if n.ID == notificationID && n.UserID == userID {
			n.Read = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	var changed int64
	for _, n := range f.items {
		if n.UserID == userID && !n.Read {
			n.Read = true
			changed++
		}
	}
	return changed, nil
}

func (f *fakeNotificationRepo) Reaches(ctx context.Context, actor models.Actor, userID int64) (bool, error) {
	for _, id := range f.audience[actor] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func TestNotificationCreateDefaultsToInfo(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil)

	id, err := svc.Create(context.Background(), dto.CreateNotificationRequest{UserID: 1, Title: "Hi", Message: "Welcome"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, models.NotificationInfo, repo.items[0].Type)

	_, err = svc.Create(context.Background(), dto.CreateNotificationRequest{UserID: 1, Title: "Hi", Message: "x", Type: "alert"})
	assert.ErrorIs(t, err, appErrors.ErrDomainConstraint)
}

func TestNotificationReadFlow(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, dto.CreateNotificationRequest{UserID: 1, Title: title, Message: "m", Type: models.NotificationJob})
		require.NoError(t, err)
	}

	assert.ErrorIs(t, svc.MarkRead(ctx, 2, 1), appErrors.ErrNotFound)
	require.NoError(t, svc.MarkRead(ctx, 1, 1))

	unread, err := svc.List(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, "c", unread[0].Title)

	n, err := svc.MarkAllRead(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	unread, err = svc.List(ctx, 1, true)
	require.NoError(t, err)
	assert.NotNil(t, unread)
	assert.Empty(t, unread)
}

func TestNotificationSendLimitedToAudience(t *testing.T) {
	college := models.Actor{Role: models.RoleCollegeAdmin, ProfileID: 4}
	repo := &fakeNotificationRepo{audience: map[models.Actor][]int64{college: {30}}}
	svc := NewNotificationService(repo, nil)
	ctx := context.Background()

	_, err := svc.Send(ctx, college, dto.CreateNotificationRequest{UserID: 31, Title: "Drive", Message: "Tomorrow"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = svc.Send(ctx, models.Actor{Role: models.RoleRecruiter, ProfileID: 4}, dto.CreateNotificationRequest{UserID: 30, Title: "Drive", Message: "Tomorrow"})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.Empty(t, repo.items)

	id, err := svc.Send(ctx, college, dto.CreateNotificationRequest{UserID: 30, Title: "Drive", Message: "Tomorrow"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}
