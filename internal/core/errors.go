package core

import "errors"

var (
	// ErrEmptyCredentials is returned when a sign-in or sign-up form is
	// submitted with a blank required field
	ErrEmptyCredentials = errors.New("email and password are required")

	// ErrPasswordMismatch is returned when the sign-up confirmation does
	// not match the password
	ErrPasswordMismatch = errors.New("passwords do not match")
)
