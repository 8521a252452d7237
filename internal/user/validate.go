package user

import (
	"fmt"
	"strings"

	"shopease-be/internal/utils"
)

// Validate applies the registration rules: all fields present, full name at
// least 3 characters, a standard email address, a 10-digit phone number and a
// password of at least 8 characters.
func (p RegisterParams) Validate() error {
	if p.FullName == "" || p.Email == "" || p.Password == "" || p.Phone == "" {
		return fmt.Errorf("%w: all fields (fullName, email, password, phone) are required", ErrValidation)
	}
	if len(strings.TrimSpace(p.FullName)) < 3 {
		return fmt.Errorf("%w: full name must be at least 3 characters long", ErrValidation)
	}
	if !utils.ValidEmail(p.Email) {
		return fmt.Errorf("%w: please provide a valid email address", ErrValidation)
	}
	if !utils.ValidPhone(p.Phone) {
		return fmt.Errorf("%w: phone number must be exactly 10 digits", ErrValidation)
	}
	if len(p.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	}
	return nil
}
