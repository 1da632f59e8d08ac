package entities

import (
	"time"

	"github.com/google/uuid"
)

// OtpRecord is a short-lived one-time-password record. It references its
// owner only by email value, never by user id. The record id doubles as the
// handle returned to the client on issuance.
type OtpRecord struct {
	Id        uuid.UUID
	Email     string
	Code      string
	Active    bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

func NewOtpRecord(email, code string, ttl time.Duration) *OtpRecord {
	now := time.Now()
	return &OtpRecord{
		Id:        uuid.New(),
		Email:     email,
		Code:      code,
		Active:    true,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the record's validity window has elapsed. Expiry is
// carried as a persisted timestamp so it survives process restarts.
func (o *OtpRecord) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
