// file: service/token_service.go

package service

import (
	"errors"
	"fmt"
	"snapgram-api/config"
	"snapgram-api/logger"
	"snapgram-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, malformed
// input, expiry. Callers treat them all uniformly as "unauthenticated".
var ErrInvalidToken = errors.New("Invalid token")

const tokenIssuer = "localhost"

// TokenService mints and verifies the two token flavors. Access and refresh
// tokens carry the same {user_id, role_id} payload but are signed with
// distinct secrets and lifetimes.
type TokenService struct{}

func NewTokenService() *TokenService {
	return &TokenService{}
}

func (s *TokenService) secret(isAccess bool) []byte {
	if isAccess {
		return []byte(config.AppConfig.JWT.AccessSecret)
	}
	return []byte(config.AppConfig.JWT.RefreshSecret)
}

func (s *TokenService) generate(userID, roleID int, secret []byte, expireIn time.Duration) (string, error) {
	issuedAt := time.Now()

	claims := &model.AppClaims{
		Data: model.TokenData{
			UserID: userID,
			RoleID: roleID,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(expireIn)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", userID).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// GenerateAccessToken mints a short-lived access token.
func (s *TokenService) GenerateAccessToken(userID, roleID int) (string, error) {
	expireIn := time.Duration(config.AppConfig.JWT.AccessExpSeconds) * time.Second
	return s.generate(userID, roleID, s.secret(true), expireIn)
}

// GenerateRefreshToken mints the longer-lived refresh token.
func (s *TokenService) GenerateRefreshToken(userID, roleID int) (string, error) {
	expireIn := time.Duration(config.AppConfig.JWT.RefreshExpSeconds) * time.Second
	return s.generate(userID, roleID, s.secret(false), expireIn)
}

// Verify validates signature and expiry against the selected secret and
// returns the embedded claims. Any failure comes back as ErrInvalidToken;
// nothing is thrown past this boundary.
func (s *TokenService) Verify(tokenString string, isAccess bool) (*model.TokenData, error) {
	claims := &model.AppClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret(isAccess), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return &claims.Data, nil
}
