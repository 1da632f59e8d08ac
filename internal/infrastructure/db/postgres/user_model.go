package postgres

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id         uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Name       string `gorm:"not null"`
	Age        int    `gorm:"not null"`
	Gender     string `gorm:"not null"`
	Email      string `gorm:"uniqueIndex;not null"`
	Contact    string `gorm:"not null"`
	IsVerified bool   `gorm:"default:false"`

	PermanentLocation string

	Tokens            []SessionTokenModel     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	EmergencyContacts []EmergencyContactModel `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Todos             []TodoModel             `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (UserModel) TableName() string {
	return "users"
}

type SessionTokenModel struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	UserId    uuid.UUID `gorm:"type:uuid;index;not null"`
	Token     string    `gorm:"not null"`
	CreatedAt time.Time
}

func (SessionTokenModel) TableName() string {
	return "session_tokens"
}

type EmergencyContactModel struct {
	Id            uint      `gorm:"primaryKey;autoIncrement"`
	UserId        uuid.UUID `gorm:"type:uuid;index;not null"`
	ContactName   string    `gorm:"not null"`
	ContactNumber string    `gorm:"not null"`
	ContactEmail  string
}

func (EmergencyContactModel) TableName() string {
	return "emergency_contacts"
}

type TodoModel struct {
	Id           uuid.UUID `gorm:"type:uuid;primary_key"`
	UserId       uuid.UUID `gorm:"type:uuid;index;not null"`
	Title        string    `gorm:"not null"`
	Description  string
	IsDone       bool      `gorm:"default:false"`
	ScheduledFor time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TodoModel) TableName() string {
	return "todos"
}
