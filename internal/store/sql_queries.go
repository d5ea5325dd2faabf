package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-feedback/models"
)

var (
	userColumns     = []string{"username", "password", "email", "first_name", "last_name"}
	feedbackColumns = []string{"id", "title", "content", "username"}
)

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.Username, user.Password, user.Email, user.FirstName, user.LastName).
		ToSql()
}

func (db *DB) selectUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (db *DB) deleteUserQuery(username string) (string, []any, error) {
	return db.builder.
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (db *DB) insertFeedbackQuery(feedback models.Feedback) (string, []any, error) {
	return db.builder.
		Insert(models.Feedback{}.TableName()).
		Columns("title", "content", "username").
		Values(feedback.Title, feedback.Content, feedback.Username).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) selectFeedbackByIDQuery(id int64) (string, []any, error) {
	return db.builder.
		Select(feedbackColumns...).
		From(models.Feedback{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) selectFeedbackByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select(feedbackColumns...).
		From(models.Feedback{}.TableName()).
		Where(sq.Eq{"username": username}).
		OrderBy("id").
		ToSql()
}

func (db *DB) updateFeedbackQuery(update models.FeedbackUpdate) (string, []any, error) {
	return db.builder.
		Update(models.Feedback{}.TableName()).
		Set("title", update.Title).
		Set("content", update.Content).
		Where(sq.Eq{"id": update.ID}).
		ToSql()
}

func (db *DB) deleteFeedbackQuery(id int64) (string, []any, error) {
	return db.builder.
		Delete(models.Feedback{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) deleteFeedbackByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Delete(models.Feedback{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}
