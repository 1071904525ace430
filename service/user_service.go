package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"snapgram-api/logger"
	"snapgram-api/model"
	"snapgram-api/repository"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrUsernameTaken = errors.New("Username already exists")
	ErrEmailTaken    = errors.New("Email already registered")
)

const codeTTL = 5 * time.Minute

// UserService handles registration and profile reads.
type UserService struct {
	userRepo  repository.IUserRepository
	verifRepo repository.IVerificationRepository
	mailer    Mailer
	cache     ICacheClient
}

func NewUserService(userRepo repository.IUserRepository, verifRepo repository.IVerificationRepository, mailer Mailer, cache ICacheClient) *UserService {
	return &UserService{
		userRepo:  userRepo,
		verifRepo: verifRepo,
		mailer:    mailer,
		cache:     cache,
	}
}

// Register creates an unverified user, issues a fresh verification code and
// mails it. The returned bool reports whether the mail went out: a send
// failure after a successful insert is still a success, only the response
// message differs (degraded-success case).
func (s *UserService) Register(req *model.RegisterRequest) (*model.User, bool, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"username": req.Username,
		"email":    req.Email,
	})

	taken, err := s.userRepo.UsernameExists(req.Username)
	if err != nil {
		return nil, false, fmt.Errorf("could not check username: %w", err)
	}
	if taken {
		return nil, false, ErrUsernameTaken
	}

	taken, err = s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, false, fmt.Errorf("could not check email: %w", err)
	}
	if taken {
		return nil, false, ErrEmailTaken
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, false, err
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Image:    req.Image,
		Bio:      req.Bio,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, false, fmt.Errorf("could not create user: %w", err)
	}

	// Defensive: a freshly created user cannot have codes yet.
	if err := s.verifRepo.DeleteByUserID(user.ID); err != nil {
		return nil, false, fmt.Errorf("could not clear verification codes: %w", err)
	}

	codeValue, err := GenerateCode()
	if err != nil {
		return nil, false, err
	}
	code := &model.VerificationCode{
		UserID:    user.ID,
		Code:      codeValue,
		ExpiresAt: time.Now().Add(codeTTL),
	}
	if err := s.verifRepo.Create(code); err != nil {
		return nil, false, fmt.Errorf("could not store verification code: %w", err)
	}

	if err := s.mailer.Send(user.Email, user.Username, "Verify Your Email",
		verificationEmailBody(user.Username, codeValue, code.ExpiresAt)); err != nil {
		log.WithError(err).Warn("User registered but verification email failed to send")
		return user, false, nil
	}

	log.Info("User registered and verification email sent")
	return user, true, nil
}

// GetProfile reads the profile row with a cache-aside strategy.
func (s *UserService) GetProfile(userID int) (*model.Profile, error) {
	cacheKey := profileCacheKey(userID)
	ctx := context.Background()

	cached, err := s.cache.Get(ctx, cacheKey).Result()
	if err == nil {
		var profile model.Profile
		if err := json.Unmarshal([]byte(cached), &profile); err == nil {
			return &profile, nil
		}
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()

	if data, err := json.Marshal(profile); err == nil {
		s.cache.Set(ctx, cacheKey, data, profileCacheTTL)
	}

	return profile, nil
}

func verificationEmailBody(username, code string, expiresAt time.Time) string {
	return fmt.Sprintf(`<h1>Welcome %s!</h1>
    <p>Thank you for registering at <b>Snapgram</b>. We are excited to have you on board!</p><br>
    <p>Your verification code is:</p>
    <h1>%s</h1>
    <p>This code expires at %s.</p>
    <br>
    <p>Best regards,<br>Snapgram Team</p>`, username, code, expiresAt.Format("2006-01-02 15:04:05"))
}
