package postgres

import (
	"time"

	"github.com/google/uuid"
)

// OtpModel deliberately has no foreign key to users: records are matched to
// their owner by email value only.
type OtpModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"index;not null"`
	Code      string    `gorm:"not null"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`
}

func (OtpModel) TableName() string {
	return "otps"
}
