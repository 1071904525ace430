// file: service/verification_service.go

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"snapgram-api/logger"
	"snapgram-api/model"
	"snapgram-api/repository"
	"time"
)

var (
	ErrEmailNotRegistered = errors.New("invalid email")
	ErrEmailNotFound      = errors.New("Email is not found")
	ErrCodeNotFound       = errors.New("Verification code is not found. Please request a new one.")
	ErrInvalidCode        = errors.New("Invalid verification code")
	ErrCodeExpired        = errors.New("Verification code has expired. Please request a new one.")
	ErrAlreadyVerified    = errors.New("Email already verified")
	ErrMailSendFailed     = errors.New("failed to send email")
	ErrVerifyNotPersisted = errors.New("Email verification failed to persist")
)

// VerificationService owns the code-based flows: password reset request,
// reset code check, reset commit, and email verification.
type VerificationService struct {
	db        *sql.DB
	userRepo  repository.IUserRepository
	verifRepo repository.IVerificationRepository
	mailer    Mailer
	cache     ICacheClient
}

func NewVerificationService(db *sql.DB, userRepo repository.IUserRepository, verifRepo repository.IVerificationRepository, mailer Mailer, cache ICacheClient) *VerificationService {
	return &VerificationService{
		db:        db,
		userRepo:  userRepo,
		verifRepo: verifRepo,
		mailer:    mailer,
		cache:     cache,
	}
}

// RequestPasswordReset issues a fresh reset code and mails it. Earlier codes
// for the user are left in place; only the newest one will ever be checked.
func (s *VerificationService) RequestPasswordReset(email string) error {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrEmailNotRegistered
		}
		return fmt.Errorf("could not look up user: %w", err)
	}

	codeValue, err := GenerateCode()
	if err != nil {
		return err
	}
	code := &model.VerificationCode{
		UserID:    user.ID,
		Code:      codeValue,
		ExpiresAt: time.Now().Add(codeTTL),
	}
	if err := s.verifRepo.Create(code); err != nil {
		return fmt.Errorf("could not store reset code: %w", err)
	}

	if err := s.mailer.Send(user.Email, user.Username, "Verify Your Email",
		resetEmailBody(user.Username, codeValue, code.ExpiresAt)); err != nil {
		return ErrMailSendFailed
	}

	logger.Log.WithField("user_id", user.ID).Info("Password reset code sent")
	return nil
}

// checkLatestCode compares the supplied code against the newest row for the
// user and its expiry. Superseded codes never match by construction.
func (s *VerificationService) checkLatestCode(userID int, code string) error {
	latest, err := s.verifRepo.GetLatestByUserID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrCodeNotFound
		}
		return fmt.Errorf("could not look up verification code: %w", err)
	}

	if latest.Code != code {
		return ErrInvalidCode
	}
	if time.Now().After(latest.ExpiresAt) {
		return ErrCodeExpired
	}
	return nil
}

// VerifyResetCode consumes a valid reset code. No ticket ties this check to
// the following reset commit; the PATCH step trusts the bare email alone.
func (s *VerificationService) VerifyResetCode(email, code string) error {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrEmailNotFound
		}
		return fmt.Errorf("could not look up user: %w", err)
	}

	if err := s.checkLatestCode(user.ID, code); err != nil {
		return err
	}

	if err := s.verifRepo.DeleteByUserID(user.ID); err != nil {
		return fmt.Errorf("could not delete verification codes: %w", err)
	}
	return nil
}

// ResetPassword overwrites the password keyed by email. No code is re-checked
// at this step.
func (s *VerificationService) ResetPassword(email, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePasswordByEmail(email, hashed); err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}

	logger.Log.WithField("email", email).Info("Password reset committed")
	return nil
}

// VerifyEmail flips email_verified exactly once. The flag update and the code
// deletion run in one all-or-nothing transaction, and the flag is re-read
// after commit to confirm the write persisted.
func (s *VerificationService) VerifyEmail(email, code string) error {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrEmailNotFound
		}
		return fmt.Errorf("could not look up user: %w", err)
	}

	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	if err := s.checkLatestCode(user.ID, code); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.userRepo.MarkEmailVerified(tx, user.ID); err != nil {
		return fmt.Errorf("could not mark email verified: %w", err)
	}
	if err := s.verifRepo.DeleteByUserIDTx(tx, user.ID); err != nil {
		return fmt.Errorf("could not delete verification codes: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	verified, err := s.userRepo.GetEmailVerified(user.ID)
	if err != nil {
		return fmt.Errorf("could not re-read verified flag: %w", err)
	}
	if !verified {
		return ErrVerifyNotPersisted
	}

	// The cached profile now carries a stale email_verified flag.
	s.cache.Del(context.Background(), profileCacheKey(user.ID))

	logger.Log.WithField("user_id", user.ID).Info("Email verified")
	return nil
}

func resetEmailBody(username, code string, expiresAt time.Time) string {
	return fmt.Sprintf(`<h1>Password Reset Request</h1>
<p>Hello <b>%s</b>,</p>
<p>We received a request to reset your password for your Snapgram account.</p><br>
<p>Your password reset code is:</p>
<h1>%s</h1>
<p>This code expires at %s.</p>
<br>
<p>If you did not request a password reset, please ignore this email.</p>
<br>
<p>Best regards,<br>Snapgram Team</p>`, username, code, expiresAt.Format("2006-01-02 15:04:05"))
}
