package model

import (
	"database/sql"
	"time"
)

type User struct {
	ID            int            `json:"user_id"`
	Username      string         `json:"username"`
	Email         string         `json:"email"`
	Password      string         `json:"-"`
	Image         *string        `json:"image,omitempty"`
	Bio           *string        `json:"bio,omitempty"`
	RoleID        int            `json:"role_id"`
	EmailVerified bool           `json:"email_verified"`
	RefreshToken  sql.NullString `json:"-"` // at most one live value; set on login, cleared on logout
	JoinDate      time.Time      `json:"join_date"`
}

// Profile is the public view of a user row returned by /api/me.
type Profile struct {
	UserID        int     `json:"user_id"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Image         *string `json:"image,omitempty"`
	Bio           *string `json:"bio,omitempty"`
	RoleID        int     `json:"role_id"`
	EmailVerified bool    `json:"email_verified"`
}

func (u *User) Profile() *Profile {
	return &Profile{
		UserID:        u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Image:         u.Image,
		Bio:           u.Bio,
		RoleID:        u.RoleID,
		EmailVerified: u.EmailVerified,
	}
}
