package models

// Feedback is a short note owned by exactly one [User].
type Feedback struct {
	// ID is assigned by the database and never changes.
	ID int64 `json:"id"`

	// Title is a short headline, at most 100 characters long.
	Title string `json:"title"`

	// Content is the free-form body of the note.
	Content string `json:"content"`

	// Username references the owning [User]. Only the owner may
	// update or delete the note.
	Username string `json:"username"`
}

// TableName returns the name of the database table
// associated with the Feedback model.
func (f Feedback) TableName() string {
	return "feedback"
}

// FeedbackUpdate carries the mutable part of a [Feedback].
type FeedbackUpdate struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
