package models

// User represents an account entity used for authentication and authorization.
// Username is the primary identity and never changes after registration.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique user identifier, at most 20 characters long.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// Email is the contact address of the user, at most 50 characters long.
	Email string `json:"email"`

	// FirstName is the given name shown in greetings, at most 30 characters long.
	FirstName string `json:"first_name"`

	// LastName is the family name of the user, at most 30 characters long.
	LastName string `json:"last_name"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPage is everything shown on a user's own page: the account
// and all feedback it owns.
type UserPage struct {
	User     User       `json:"user"`
	Feedback []Feedback `json:"feedback"`
}
