// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of go-feedback.
//
// Notice* constants are shown once on the page that follows a redirect;
// Field* constants are rendered next to a form input. Keeping them in one
// place keeps the wording consistent across handlers.
package app

const (
	// NoticeRegistered greets a new user. Takes the first name.
	NoticeRegistered = "Welcome %s! Account Creation Successful!"

	// NoticeLoggedIn greets a returning user. Takes the first name.
	NoticeLoggedIn = "Welcome Back, %s!"

	NoticeLoggedOut   = "You have been logged out"
	NoticeNotLoggedIn = "You are not logged in"

	// NoticeLoginFirst is shown whenever the session identity does not own
	// the requested resource, including when there is no session at all.
	NoticeLoginFirst = "Please login first"

	NoticeUserDeleted  = "User Deleted"
	NoticeUserNotFound = "User not found"

	NoticeFeedbackSaved   = "Feedback Saved"
	NoticeFeedbackUpdated = "Feedback Updated"
	NoticeFeedbackDeleted = "Feedback Deleted"
)

const (
	// FieldUsernameTaken is attached to the username input on a duplicate
	// registration.
	FieldUsernameTaken = "Username taken"

	// FieldInvalidCredentials is attached to the username input on a failed
	// login. It never tells which of username or password was wrong.
	FieldInvalidCredentials = "Invalid username or password"
)
