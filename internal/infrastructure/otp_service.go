package infrastructure

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"time"
)

const DefaultOTPLength = 4

type OTPService struct {
	length int
}

func NewOTPService(length int) *OTPService {
	if length <= 0 {
		length = DefaultOTPLength
	}
	return &OTPService{length: length}
}

// GenerateCode produces a fixed-width numeric code, each digit drawn
// uniformly from 0-9.
func (o *OTPService) GenerateCode() string {
	code := make([]byte, o.length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// Fallback in case of error
			code[i] = byte(time.Now().UnixNano()%10) + '0'
			continue
		}
		code[i] = byte(n.Int64()) + '0'
	}
	return string(code)
}

// Matches compares a submitted code against the stored one in constant time.
func (o *OTPService) Matches(stored, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
