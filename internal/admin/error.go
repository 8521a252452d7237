package admin

import "errors"

var (
	// -- Validation & Input --
	ErrValidation = errors.New("invalid registration input")

	// -- Resource State --
	// Raised by registration whenever any admin record exists, regardless of
	// email. At most one admin may ever exist.
	ErrAdminExists = errors.New("admin already exists, only one admin is allowed")

	// -- Authentication --
	ErrInvalidCredentials = errors.New("invalid email or password")
)
