package model

import "github.com/golang-jwt/jwt/v5"

// TokenData is the payload embedded under the "data" claim of every token.
type TokenData struct {
	UserID int `json:"user_id"`
	RoleID int `json:"role_id"`
}

type AppClaims struct {
	Data TokenData `json:"data"`
	jwt.RegisteredClaims
}
