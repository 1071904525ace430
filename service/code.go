// file: service/code.go

package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateCode produces a 6-digit numeric one-time code from crypto/rand.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
