// repository/user_repository_test.go
package repository

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"snapgram-api/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("could not open sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db), dbMock
}

func userRows(user *model.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"user_id", "username", "email", "password", "image", "bio",
		"role_id", "email_verified", "refresh_token", "join_date",
	}).AddRow(user.ID, user.Username, user.Email, user.Password, user.Image,
		user.Bio, user.RoleID, user.EmailVerified, user.RefreshToken, user.JoinDate)
}

func sampleUser() *model.User {
	return &model.User{
		ID:            5,
		Username:      "bob",
		Email:         "bob@x.com",
		Password:      "$2a$14$hash",
		RoleID:        2,
		EmailVerified: true,
		RefreshToken:  sql.NullString{String: "refresh-token", Valid: true},
		JoinDate:      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestUserRepository_CreateUser(t *testing.T) {
	repo, dbMock := newUserRepo(t)
	joined := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	dbMock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, email, password, image, bio, email_verified)`)).
		WithArgs("bob", "bob@x.com", "$2a$14$hash", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "role_id", "join_date"}).AddRow(5, 2, joined))

	user := &model.User{Username: "bob", Email: "bob@x.com", Password: "$2a$14$hash"}
	err := repo.CreateUser(user)

	assert.NoError(t, err)
	assert.Equal(t, 5, user.ID)
	assert.Equal(t, 2, user.RoleID, "role must come back from the database default")
	assert.Equal(t, joined, user.JoinDate)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	repo, dbMock := newUserRepo(t)
	stored := sampleUser()

	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE email = $1`)).
		WithArgs("bob@x.com").
		WillReturnRows(userRows(stored))

	user, err := repo.GetUserByEmail("bob@x.com")

	assert.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	assert.Equal(t, stored.RefreshToken, user.RefreshToken)
}

func TestUserRepository_GetUserByEmail_NotFound(t *testing.T) {
	repo, dbMock := newUserRepo(t)

	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE email = $1`)).
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByEmail("nobody@x.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUserRepository_GetUserByRefreshToken(t *testing.T) {
	repo, dbMock := newUserRepo(t)
	stored := sampleUser()

	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE refresh_token = $1`)).
		WithArgs("refresh-token").
		WillReturnRows(userRows(stored))

	user, err := repo.GetUserByRefreshToken("refresh-token")

	assert.NoError(t, err)
	assert.Equal(t, 5, user.ID)
}

func TestUserRepository_ExistsChecks(t *testing.T) {
	repo, dbMock := newUserRepo(t)

	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`)).
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`)).
		WithArgs("new@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	taken, err := repo.UsernameExists("bob")
	assert.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailExists("new@x.com")
	assert.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserRepository_SetRefreshToken(t *testing.T) {
	repo, dbMock := newUserRepo(t)

	dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET refresh_token = $1 WHERE user_id = $2`)).
		WithArgs("new-token", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.SetRefreshToken(5, "new-token")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestUserRepository_ClearRefreshToken_NoSuchUser(t *testing.T) {
	repo, dbMock := newUserRepo(t)

	dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET refresh_token = NULL WHERE user_id = $1`)).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.ClearRefreshToken(99)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected, "caller decides what zero rows means")
}

func TestUserRepository_UpdatePasswordByEmail(t *testing.T) {
	repo, dbMock := newUserRepo(t)

	dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password = $1 WHERE email = $2`)).
		WithArgs("$2a$14$newhash", "bob@x.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdatePasswordByEmail("bob@x.com", "$2a$14$newhash"))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserRepository_MarkEmailVerified_InTx(t *testing.T) {
	repo, dbMock := newUserRepo(t)

	dbMock.ExpectBegin()
	dbMock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET email_verified = TRUE WHERE user_id = $1`)).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	tx, err := repo.DB.Begin()
	assert.NoError(t, err)
	assert.NoError(t, repo.MarkEmailVerified(tx, 5))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserRepository_GetEmailVerified(t *testing.T) {
	repo, dbMock := newUserRepo(t)

	dbMock.ExpectQuery(regexp.QuoteMeta(`SELECT email_verified FROM users WHERE user_id = $1`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"email_verified"}).AddRow(true))

	verified, err := repo.GetEmailVerified(5)

	assert.NoError(t, err)
	assert.True(t, verified)
}
