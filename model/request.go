// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required"`
	Image    *string `json:"image,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest defines the payload for an authenticated password change.
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// VerifyCodeRequest carries an email plus the 6-digit code the user received.
// It is shared by email verification and the reset-password code check.
type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

// ResetPasswordRequest commits a new password after the reset flow.
// The capitalized Password key mirrors the wire contract of the client.
type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required"`
	Password        string `json:"Password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}
