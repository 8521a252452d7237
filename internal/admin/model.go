package admin

import "time"

type Admin struct {
	ID        int
	FullName  string
	Email     string
	Password  string // bcrypt hash, never serialized
	CreatedAt time.Time
}

// PublicAdmin is the caller-visible projection of an Admin.
type PublicAdmin struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (a Admin) Public() PublicAdmin {
	return PublicAdmin{
		ID:       a.ID,
		FullName: a.FullName,
		Email:    a.Email,
	}
}

type RegisterParams struct {
	FullName string
	Email    string
	Password string
}
