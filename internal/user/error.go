package user

import "errors"

var (
	// -- Validation & Input --
	ErrValidation = errors.New("invalid registration input")

	// -- Resource State --
	ErrEmailExists  = errors.New("user already exists with this email, please login")
	ErrUserNotFound = errors.New("user not found")

	// -- Authentication --
	// Deliberately identical for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
