package service

import (
	"database/sql"
	"errors"
	"fmt"
	"snapgram-api/logger"
	"snapgram-api/repository"
)

var (
	// ErrInvalidCredentials is returned for an unknown email AND for a wrong
	// password. The shared message is deliberate: the response must not leak
	// which of the two fields was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrSessionUpdateFailed  = errors.New("failed to update refresh token")
	ErrPasswordMismatch     = errors.New("new password must match confirm password")
	ErrWrongOldPassword     = errors.New("old password is wrong")
)

// LoginResult is the payload returned to a freshly authenticated client.
type LoginResult struct {
	Name         string `json:"name"`
	Role         int    `json:"role"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService sequences the credential store and the token issuer/verifier
// into the login, refresh, logout and change-password flows.
type AuthService struct {
	userRepo repository.IUserRepository
	tokens   *TokenService
}

func NewAuthService(userRepo repository.IUserRepository, tokens *TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Login verifies the credentials, rotates the stored refresh token and mints
// a fresh token pair. Overwriting the column invalidates any prior session.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("could not look up user: %w", err)
	}

	if !CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID, user.RoleID)
	if err != nil {
		return nil, err
	}

	affected, err := s.userRepo.SetRefreshToken(user.ID, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("could not store refresh token: %w", err)
	}
	if affected != 1 {
		return nil, ErrSessionUpdateFailed
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.RoleID)
	if err != nil {
		return nil, err
	}

	logger.Log.WithField("user_id", user.ID).Info("User logged in")

	return &LoginResult{
		Name:         user.Username,
		Role:         user.RoleID,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshAccessToken exchanges a stored refresh token for a new access token.
// The refresh token itself is not rotated here; only login overwrites it.
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	user, err := s.userRepo.GetUserByRefreshToken(refreshToken)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrRefreshTokenNotFound
		}
		return "", fmt.Errorf("could not look up refresh token: %w", err)
	}

	data, err := s.tokens.Verify(user.RefreshToken.String, false)
	if err != nil {
		return "", ErrInvalidToken
	}

	return s.tokens.GenerateAccessToken(data.UserID, data.RoleID)
}

// Logout clears the user's stored refresh token. The access token stays
// technically valid until expiry; revocation is the column wipe alone.
func (s *AuthService) Logout(userID int) error {
	affected, err := s.userRepo.ClearRefreshToken(userID)
	if err != nil {
		return fmt.Errorf("could not clear refresh token: %w", err)
	}
	if affected != 1 {
		return ErrSessionUpdateFailed
	}

	logger.Log.WithField("user_id", userID).Info("User logged out")
	return nil
}

// ChangePassword replaces the password of an authenticated, email-verified
// user. A user whose email was never verified cannot change the password,
// even with a valid access token; that case is answered exactly like a wrong
// old password.
func (s *AuthService) ChangePassword(userID int, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrWrongOldPassword
		}
		return fmt.Errorf("could not look up user: %w", err)
	}

	if !user.EmailVerified {
		return ErrWrongOldPassword
	}
	if !CheckPasswordHash(oldPassword, user.Password) {
		return ErrWrongOldPassword
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(userID, hashed); err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}

	logger.Log.WithField("user_id", userID).Info("Password changed")
	return nil
}
