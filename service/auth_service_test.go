// file: service/auth_service_test.go

package service

import (
	"database/sql"
	"errors"
	"snapgram-api/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}
func (m *mockUserRepo) GetUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByID(userID int) (*model.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByRefreshToken(token string) (*model.User, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) UsernameExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserRepo) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}
func (m *mockUserRepo) SetRefreshToken(userID int, token string) (int64, error) {
	args := m.Called(userID, token)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockUserRepo) ClearRefreshToken(userID int) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockUserRepo) UpdatePassword(userID int, passwordHash string) error {
	args := m.Called(userID, passwordHash)
	return args.Error(0)
}
func (m *mockUserRepo) UpdatePasswordByEmail(email, passwordHash string) error {
	args := m.Called(email, passwordHash)
	return args.Error(0)
}
func (m *mockUserRepo) MarkEmailVerified(tx *sql.Tx, userID int) error {
	args := m.Called(tx, userID)
	return args.Error(0)
}
func (m *mockUserRepo) GetEmailVerified(userID int) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

// quickHash uses the minimum bcrypt cost to keep the suite fast; verification
// does not depend on the cost the hash was created with.
func quickHash(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

// TestHashAndCheckPassword ensures that password hashing and verification work correctly.
func TestHashAndCheckPassword(t *testing.T) {
	password := "mySecretPassword123"

	hashedPassword, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() returned an unexpected error: %v", err)
	}

	if hashedPassword == password {
		t.Errorf("Hashed password should not be the same as the original password.")
	}

	if !CheckPasswordHash(password, hashedPassword) {
		t.Errorf("CheckPasswordHash() should have returned true for a matching password, but got false.")
	}

	if CheckPasswordHash("notMyPassword", hashedPassword) {
		t.Errorf("CheckPasswordHash() should have returned false for a non-matching password, but got true.")
	}
}

func TestAuthService_Login(t *testing.T) {
	tokens := NewTokenService()
	storedUser := func() *model.User {
		return &model.User{
			ID:       5,
			Username: "bob",
			Email:    "bob@x.com",
			Password: quickHash(t, "secret1"),
			RoleID:   2,
		}
	}

	t.Run("success returns decodable token pair", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByEmail", "bob@x.com").Return(storedUser(), nil).Once()
		mockRepo.On("SetRefreshToken", 5, mock.AnythingOfType("string")).Return(int64(1), nil).Once()

		authService := NewAuthService(mockRepo, tokens)
		result, err := authService.Login("bob@x.com", "secret1")

		assert.NoError(t, err)
		assert.Equal(t, "bob", result.Name)
		assert.Equal(t, 2, result.Role)

		// The access token must decode with the access secret and carry the
		// stored identifiers.
		data, err := tokens.Verify(result.Token, true)
		assert.NoError(t, err)
		assert.Equal(t, 5, data.UserID)
		assert.Equal(t, 2, data.RoleID)

		data, err = tokens.Verify(result.RefreshToken, false)
		assert.NoError(t, err)
		assert.Equal(t, 5, data.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByEmail", "nobody@x.com").Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("GetUserByEmail", "bob@x.com").Return(storedUser(), nil).Once()

		authService := NewAuthService(mockRepo, tokens)

		_, errUnknown := authService.Login("nobody@x.com", "secret1")
		_, errWrongPass := authService.Login("bob@x.com", "wrong")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
		mockRepo.AssertNotCalled(t, "SetRefreshToken")
	})

	t.Run("token update affecting zero rows is internal", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByEmail", "bob@x.com").Return(storedUser(), nil).Once()
		mockRepo.On("SetRefreshToken", 5, mock.AnythingOfType("string")).Return(int64(0), nil).Once()

		authService := NewAuthService(mockRepo, tokens)
		_, err := authService.Login("bob@x.com", "secret1")

		assert.ErrorIs(t, err, ErrSessionUpdateFailed)
	})
}

func TestAuthService_RefreshAccessToken(t *testing.T) {
	tokens := NewTokenService()

	t.Run("success mints a new access token from stored claims", func(t *testing.T) {
		refreshToken, err := tokens.GenerateRefreshToken(9, 2)
		assert.NoError(t, err)

		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByRefreshToken", refreshToken).Return(&model.User{
			ID:           9,
			RoleID:       2,
			RefreshToken: sql.NullString{String: refreshToken, Valid: true},
		}, nil).Once()

		authService := NewAuthService(mockRepo, tokens)
		accessToken, err := authService.RefreshAccessToken(refreshToken)

		assert.NoError(t, err)
		data, err := tokens.Verify(accessToken, true)
		assert.NoError(t, err)
		assert.Equal(t, 9, data.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByRefreshToken", "gone").Return(nil, sql.ErrNoRows).Once()

		authService := NewAuthService(mockRepo, tokens)
		_, err := authService.RefreshAccessToken("gone")

		assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
	})

	t.Run("stored token failing verification is invalid", func(t *testing.T) {
		// A token signed with the access secret must not pass the refresh check.
		wrongFlavor, err := tokens.GenerateAccessToken(9, 2)
		assert.NoError(t, err)

		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByRefreshToken", wrongFlavor).Return(&model.User{
			ID:           9,
			RefreshToken: sql.NullString{String: wrongFlavor, Valid: true},
		}, nil).Once()

		authService := NewAuthService(mockRepo, tokens)
		_, err = authService.RefreshAccessToken(wrongFlavor)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	tokens := NewTokenService()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("ClearRefreshToken", 3).Return(int64(1), nil).Once()

		authService := NewAuthService(mockRepo, tokens)
		assert.NoError(t, authService.Logout(3))
		mockRepo.AssertExpectations(t)
	})

	t.Run("zero rows affected is internal", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("ClearRefreshToken", 3).Return(int64(0), nil).Once()

		authService := NewAuthService(mockRepo, tokens)
		assert.ErrorIs(t, authService.Logout(3), ErrSessionUpdateFailed)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	tokens := NewTokenService()
	verifiedUser := func() *model.User {
		return &model.User{
			ID:            4,
			Password:      quickHash(t, "oldpass"),
			EmailVerified: true,
		}
	}

	t.Run("mismatched confirmation touches nothing", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		authService := NewAuthService(mockRepo, tokens)

		err := authService.ChangePassword(4, "oldpass", "newpass", "different")

		assert.ErrorIs(t, err, ErrPasswordMismatch)
		mockRepo.AssertNotCalled(t, "GetUserByID")
		mockRepo.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("unverified email cannot change password", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		unverified := verifiedUser()
		unverified.EmailVerified = false
		mockRepo.On("GetUserByID", 4).Return(unverified, nil).Once()

		authService := NewAuthService(mockRepo, tokens)
		err := authService.ChangePassword(4, "oldpass", "newpass", "newpass")

		assert.ErrorIs(t, err, ErrWrongOldPassword)
		mockRepo.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("wrong old password", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByID", 4).Return(verifiedUser(), nil).Once()

		authService := NewAuthService(mockRepo, tokens)
		err := authService.ChangePassword(4, "nottheoldpass", "newpass", "newpass")

		assert.ErrorIs(t, err, ErrWrongOldPassword)
		mockRepo.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("success stores a new hash", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByID", 4).Return(verifiedUser(), nil).Once()
		mockRepo.On("UpdatePassword", 4, mock.MatchedBy(func(hash string) bool {
			return CheckPasswordHash("newpass", hash)
		})).Return(nil).Once()

		authService := NewAuthService(mockRepo, tokens)
		err := authService.ChangePassword(4, "oldpass", "newpass", "newpass")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		expectedError := errors.New("database error")
		mockRepo.On("GetUserByID", 4).Return(nil, expectedError).Once()

		authService := NewAuthService(mockRepo, tokens)
		err := authService.ChangePassword(4, "oldpass", "newpass", "newpass")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrWrongOldPassword)
	})
}
