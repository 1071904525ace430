// file: model/verification_code.go

package model

import "time"

// VerificationCode is one short-lived 6-digit code row. A user may accumulate
// several rows; only the most recently created one is authoritative.
type VerificationCode struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Code      string    `json:"-"` // never exposed in responses, only delivered by mail
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
