package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

// otpRange spans the 6-digit codes 100000..999999. The lower bound keeps
// the leading digit non-zero so a code is always exactly six characters.
const (
	otpMin   = 100000
	otpRange = 900000
)

// GenerateOTP returns a cryptographically random 6-digit verification code.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}
