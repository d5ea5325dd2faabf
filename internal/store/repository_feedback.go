package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feedback/internal/logger"
	"github.com/MKhiriev/go-feedback/models"
)

type feedbackRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFeedbackRepository constructs a [FeedbackRepository] backed by db.
func NewFeedbackRepository(db *DB, logger *logger.Logger) FeedbackRepository {
	logger.Debug().Msg("creating feedback repository")
	return &feedbackRepository{
		db:     db,
		logger: logger,
	}
}

// CreateFeedback inserts feedback and returns it with the generated ID.
// An owner that does not exist yields [ErrUserNotFound].
func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback models.Feedback) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertFeedbackQuery(feedback)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.CreateFeedback").Msg("error building query")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&feedback.ID); err != nil {
		log.Err(err).Str("func", "*feedbackRepository.CreateFeedback").Msg("error inserting feedback")

		switch constraintViolation(err) {
		case foreignKeyConstraint:
			return models.Feedback{}, ErrUserNotFound
		default:
			return models.Feedback{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return feedback, nil
}

func (r *feedbackRepository) FindFeedbackByID(ctx context.Context, id int64) (models.Feedback, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectFeedbackByIDQuery(id)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Feedback
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Title, &found.Content, &found.Username)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Feedback{}, ErrFeedbackNotFound
	case err != nil:
		log.Err(err).Str("func", "*feedbackRepository.FindFeedbackByID").Int64("id", id).Msg("error selecting feedback")
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// ListFeedbackByUsername returns all feedback owned by username ordered by
// id. A user without feedback gets an empty, non-nil slice.
func (r *feedbackRepository) ListFeedbackByUsername(ctx context.Context, username string) ([]models.Feedback, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectFeedbackByUsernameQuery(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*feedbackRepository.ListFeedbackByUsername").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	feedback := make([]models.Feedback, 0)
	for rows.Next() {
		var f models.Feedback
		if err = rows.Scan(&f.ID, &f.Title, &f.Content, &f.Username); err != nil {
			log.Err(err).Str("func", "*feedbackRepository.ListFeedbackByUsername").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		feedback = append(feedback, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return feedback, nil
}

// UpdateFeedback overwrites title and content. Returns [ErrFeedbackNotFound]
// when no row matches the id.
func (r *feedbackRepository) UpdateFeedback(ctx context.Context, update models.FeedbackUpdate) error {
	query, args, err := r.db.updateFeedbackQuery(update)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*feedbackRepository.UpdateFeedback", query, args)
}

// DeleteFeedback removes one note. Returns [ErrFeedbackNotFound] when no row
// matches the id.
func (r *feedbackRepository) DeleteFeedback(ctx context.Context, id int64) error {
	query, args, err := r.db.deleteFeedbackQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*feedbackRepository.DeleteFeedback", query, args)
}

func (r *feedbackRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFeedbackNotFound
	}

	return nil
}
