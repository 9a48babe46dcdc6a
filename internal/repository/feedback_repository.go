package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/placement-api/internal/models"
)

// FeedbackRepository stores interview feedback.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository constructs a FeedbackRepository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts an interviewer's evaluation.
func (r *FeedbackRepository) Create(ctx context.Context, fb *models.InterviewFeedback) error {
	const query = `INSERT INTO interview_feedback (application_id, interviewer_id, technical_skills, communication, problem_solving,
		attitude, overall_rating, strengths, areas_for_improvement, recommendation)
		VALUES (:application_id, :interviewer_id, :technical_skills, :communication, :problem_solving,
		:attitude, :overall_rating, :strengths, :areas_for_improvement, :recommendation)
		RETURNING feedback_id, feedback_date`
	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, fb)
	if err != nil {
		return translate(err, "create feedback")
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&fb.ID, &fb.FeedbackDate); err != nil {
			return translate(err, "scan feedback")
		}
	}
	return translate(rows.Err(), "create feedback")
}

// ListByApplication returns all feedback for an application, oldest first.
func (r *FeedbackRepository) ListByApplication(ctx context.Context, applicationID int64) ([]models.InterviewFeedback, error) {
	const query = `SELECT feedback_id, application_id, interviewer_id, technical_skills, communication, problem_solving,
		attitude, overall_rating, strengths, areas_for_improvement, recommendation, feedback_date
		FROM interview_feedback WHERE application_id = $1 ORDER BY feedback_date, feedback_id`
	var items []models.InterviewFeedback
	if err := r.db.SelectContext(ctx, &items, query, applicationID); err != nil {
		return nil, translate(err, "list feedback")
	}
	return items, nil
}
