package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

// NotificationRepository stores per-user notifications.
type NotificationRepository struct {
	db *sqlx.DB
}

// NewNotificationRepository constructs a NotificationRepository.
func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// Create inserts a notification. A non-nil exec runs the insert inside the
// caller's transaction.
func (r *NotificationRepository) Create(ctx context.Context, exec sqlx.ExtContext, n *models.Notification) error {
	const query = `INSERT INTO notifications (user_id, title, message, notification_type)
		VALUES ($1, $2, $3, $4) RETURNING notification_id, is_read, created_at`
	row := r.exec(exec).QueryRowxContext(ctx, query, n.UserID, n.Title, n.Message, n.Type)
	if err := row.Scan(&n.ID, &n.Read, &n.CreatedAt); err != nil {
		return translate(err, "create notification")
	}
	return nil
}

// Reaches reports whether the user is a student the actor may notify: enrolled
// at the actor's college, or an applicant to one of the actor's jobs.
func (r *NotificationRepository) Reaches(ctx context.Context, actor models.Actor, userID int64) (bool, error) {
	const query = `SELECT EXISTS (
		SELECT 1 FROM students s
		WHERE s.user_id = $1 AND (
			($2 = 'college_admin' AND s.college_id = $3)
			OR ($2 = 'recruiter' AND EXISTS (
				SELECT 1 FROM applications a
				JOIN jobs j ON j.job_id = a.job_id
				WHERE a.student_id = s.student_id AND j.recruiter_id = $3))))`
	var ok bool
	if err := r.db.GetContext(ctx, &ok, query, userID, string(actor.Role), actor.ProfileID); err != nil {
		return false, translate(err, "check notification audience")
	}
	return ok, nil
}

// List returns the newest notifications for a user.
func (r *NotificationRepository) List(ctx context.Context, userID int64, unreadOnly bool) ([]models.Notification, error) {
	query := `SELECT notification_id, user_id, title, message, notification_type, is_read, created_at
		FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND is_read = FALSE`
	}
	query += ` ORDER BY created_at DESC, notification_id DESC LIMIT $2`

	var items []models.Notification
	if err := r.db.SelectContext(ctx, &items, query, userID, models.NotificationListLimit); err != nil {
		return nil, translate(err, "list notifications")
	}
	return items, nil
}

// MarkRead marks one of the user's notifications read. It reports whether the
// notification exists and belongs to the user.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) (bool, error) {
	const query = `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return false, translate(err, "mark notification read")
	}
	return affected(res)
}

// MarkAllRead marks every unread notification of the user and returns the count.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	const query = `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, translate(err, "mark all notifications read")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, translate(err, "rows affected")
	}
	return n, nil
}
