package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type EmergencyContact struct {
	ContactName   string
	ContactNumber string
	ContactEmail  string
}

type TodoItem struct {
	Id           uuid.UUID
	Title        string
	Description  string
	IsDone       bool
	ScheduledFor time.Time
	CreatedAt    time.Time
}

func NewTodoItem(title, description string, scheduledFor time.Time) *TodoItem {
	return &TodoItem{
		Id:           uuid.New(),
		Title:        title,
		Description:  description,
		IsDone:       false,
		ScheduledFor: scheduledFor,
		CreatedAt:    time.Now(),
	}
}

type User struct {
	Id                uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Name              string
	Age               int
	Gender            Gender
	Email             string
	Contact           string
	PermanentLocation string
	IsVerified        bool
	Tokens            []string
	EmergencyContacts []EmergencyContact
	Todos             []TodoItem
}

func NewUser(name string, age int, gender Gender, email, contact string) *User {
	return &User{
		Id:                uuid.New(),
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		Name:              name,
		Age:               age,
		Gender:            gender,
		Email:             email,
		Contact:           contact,
		IsVerified:        false,
		Tokens:            make([]string, 0),
		EmergencyContacts: make([]EmergencyContact, 0),
		Todos:             make([]TodoItem, 0),
	}
}

func (u *User) validate() error {
	if u.Name == "" {
		return errors.New("name must not be empty")
	}
	if u.Age <= 0 {
		return errors.New("age must be a positive number")
	}
	if u.Gender != GenderMale && u.Gender != GenderFemale && u.Gender != GenderOther {
		return errors.New("gender must be Male, Female or Other")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.Contact == "" {
		return errors.New("contact must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

// HasToken reports whether token is still present in the user's token list.
// Removal from the list revokes the token immediately.
func (u *User) HasToken(token string) bool {
	for _, t := range u.Tokens {
		if t == token {
			return true
		}
	}
	return false
}
