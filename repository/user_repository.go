package repository

import (
	"database/sql"
	"snapgram-api/logger"
	"snapgram-api/model"

	"github.com/sirupsen/logrus"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(userID int) (*model.User, error)
	GetUserByRefreshToken(token string) (*model.User, error)
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	SetRefreshToken(userID int, token string) (int64, error)
	ClearRefreshToken(userID int) (int64, error)
	UpdatePassword(userID int, passwordHash string) error
	UpdatePasswordByEmail(email, passwordHash string) error
	MarkEmailVerified(tx *sql.Tx, userID int) error
	GetEmailVerified(userID int) (bool, error)
}

// UserRepository implements IUserRepository.
type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `user_id, username, email, password, image, bio, role_id, email_verified, refresh_token, join_date`

func scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password, &user.Image,
		&user.Bio, &user.RoleID, &user.EmailVerified, &user.RefreshToken, &user.JoinDate)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new, unverified user row.
func (r *UserRepository) CreateUser(user *model.User) error {
	log := logger.Log.WithFields(logrus.Fields{
		"username": user.Username,
		"email":    user.Email,
	})
	log.Info("Executing query to create a new user")

	query := `INSERT INTO users (username, email, password, image, bio, email_verified)
		VALUES ($1, $2, $3, $4, $5, FALSE) RETURNING user_id, role_id, join_date`
	err := r.DB.QueryRow(query, user.Username, user.Email, user.Password, user.Image, user.Bio).
		Scan(&user.ID, &user.RoleID, &user.JoinDate)
	if err != nil {
		log.WithError(err).Error("Failed to execute create user query")
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.DB.QueryRow(query, email))
}

func (r *UserRepository) GetUserByID(userID int) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return scanUser(r.DB.QueryRow(query, userID))
}

// GetUserByRefreshToken looks a user up by the stored refresh token value.
// sql.ErrNoRows means the token was never issued or has been revoked.
func (r *UserRepository) GetUserByRefreshToken(token string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE refresh_token = $1`
	return scanUser(r.DB.QueryRow(query, token))
}

func (r *UserRepository) UsernameExists(username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	err := r.DB.QueryRow(query, username).Scan(&exists)
	return exists, err
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	err := r.DB.QueryRow(query, email).Scan(&exists)
	return exists, err
}

// SetRefreshToken overwrites the user's single stored refresh token. The
// previous session, if any, is silently invalidated. Returns rows affected.
func (r *UserRepository) SetRefreshToken(userID int, token string) (int64, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to store the refresh token")

	result, err := r.DB.Exec(`UPDATE users SET refresh_token = $1 WHERE user_id = $2`, token, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute set refresh token query")
		return 0, err
	}
	return result.RowsAffected()
}

// ClearRefreshToken nulls the stored refresh token on logout. Returns rows affected.
func (r *UserRepository) ClearRefreshToken(userID int) (int64, error) {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to clear the refresh token")

	result, err := r.DB.Exec(`UPDATE users SET refresh_token = NULL WHERE user_id = $1`, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute clear refresh token query")
		return 0, err
	}
	return result.RowsAffected()
}

func (r *UserRepository) UpdatePassword(userID int, passwordHash string) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to update the password")

	_, err := r.DB.Exec(`UPDATE users SET password = $1 WHERE user_id = $2`, passwordHash, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update password query")
	}
	return err
}

func (r *UserRepository) UpdatePasswordByEmail(email, passwordHash string) error {
	log := logger.Log.WithField("email", email)
	log.Info("Executing query to update the password by email")

	_, err := r.DB.Exec(`UPDATE users SET password = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		log.WithError(err).Error("Failed to execute update password by email query")
	}
	return err
}

// MarkEmailVerified flips the flag inside the caller's transaction so the
// flag update and the code deletion commit or roll back together.
func (r *UserRepository) MarkEmailVerified(tx *sql.Tx, userID int) error {
	_, err := tx.Exec(`UPDATE users SET email_verified = TRUE WHERE user_id = $1`, userID)
	if err != nil {
		logger.Log.WithField("user_id", userID).WithError(err).Error("Failed to execute mark email verified query")
	}
	return err
}

// GetEmailVerified re-reads the flag after commit to confirm persistence.
func (r *UserRepository) GetEmailVerified(userID int) (bool, error) {
	var verified bool
	err := r.DB.QueryRow(`SELECT email_verified FROM users WHERE user_id = $1`, userID).Scan(&verified)
	return verified, err
}
