// file: repository/verification_repository.go

package repository

import (
	"database/sql"
	"snapgram-api/logger"
	"snapgram-api/model"

	"github.com/sirupsen/logrus"
)

// IVerificationRepository defines the contract for verification code storage.
type IVerificationRepository interface {
	Create(code *model.VerificationCode) error
	GetLatestByUserID(userID int) (*model.VerificationCode, error)
	DeleteByUserID(userID int) error
	DeleteByUserIDTx(tx *sql.Tx, userID int) error
}

// VerificationRepository implements IVerificationRepository.
type VerificationRepository struct {
	DB *sql.DB
}

func NewVerificationRepository(db *sql.DB) *VerificationRepository {
	return &VerificationRepository{DB: db}
}

// Create inserts a fresh code row. Older rows for the same user are left in
// place; GetLatestByUserID makes them irrelevant.
func (r *VerificationRepository) Create(code *model.VerificationCode) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":    code.UserID,
		"expires_at": code.ExpiresAt,
	})
	log.Info("Executing query to create a verification code")

	query := `INSERT INTO email_verifications (user_id, code, expires_at) VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.DB.QueryRow(query, code.UserID, code.Code, code.ExpiresAt).Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create verification code query")
		return err
	}
	return nil
}

// GetLatestByUserID returns the newest code row for the user. Only this row
// is ever compared against; superseded codes are dead on arrival.
func (r *VerificationRepository) GetLatestByUserID(userID int) (*model.VerificationCode, error) {
	code := &model.VerificationCode{}
	query := `SELECT id, user_id, code, expires_at, created_at FROM email_verifications
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`
	err := r.DB.QueryRow(query, userID).Scan(&code.ID, &code.UserID, &code.Code, &code.ExpiresAt, &code.CreatedAt)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("user_id", userID).WithError(err).Error("Failed to execute get latest verification code query")
		}
		return nil, err // sql.ErrNoRows if the user has no codes
	}
	return code, nil
}

// DeleteByUserID removes every code row for the user.
func (r *VerificationRepository) DeleteByUserID(userID int) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to delete verification codes for a user")

	_, err := r.DB.Exec(`DELETE FROM email_verifications WHERE user_id = $1`, userID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete verification codes query")
	}
	return err
}

// DeleteByUserIDTx is the transactional variant used by email verification.
func (r *VerificationRepository) DeleteByUserIDTx(tx *sql.Tx, userID int) error {
	_, err := tx.Exec(`DELETE FROM email_verifications WHERE user_id = $1`, userID)
	if err != nil {
		logger.Log.WithField("user_id", userID).WithError(err).Error("Failed to execute delete verification codes query in tx")
	}
	return err
}
