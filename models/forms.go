// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/rs/zerolog"

// RegisterForm is the input of the registration page.
//
// The `form` tag names the HTML input and is used as the field name in
// validation errors; the `validate` tag holds go-playground/validator rules.
type RegisterForm struct {
	Username  string `form:"username" validate:"required,max=20"`
	Password  string `form:"password" validate:"required,maxbytes=72"`
	Email     string `form:"email" validate:"required,max=50,email"`
	FirstName string `form:"first_name" validate:"required,max=30"`
	LastName  string `form:"last_name" validate:"required,max=30"`
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
// The password is deliberately left out.
func (f RegisterForm) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", f.Username).
		Str("email", f.Email).
		Str("first_name", f.FirstName).
		Str("last_name", f.LastName)
}

// LoginForm is the input of the login page.
type LoginForm struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required"`
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
// The password is deliberately left out.
func (f LoginForm) MarshalZerologObject(e *zerolog.Event) {
	e.Str("username", f.Username)
}

// FeedbackForm is the input of the add and update feedback pages.
type FeedbackForm struct {
	Title   string `form:"title" validate:"required,max=100"`
	Content string `form:"content" validate:"required"`
}
