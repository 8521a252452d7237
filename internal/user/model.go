package user

import "time"

type User struct {
	ID        int
	FullName  string
	Email     string
	Phone     string
	Password  string // bcrypt hash, never serialized
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicUser is the caller-visible projection of a User.
type PublicUser struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

type RegisterParams struct {
	FullName string
	Email    string
	Password string
	Phone    string
}
