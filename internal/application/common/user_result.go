package common

import (
	"time"

	"github.com/google/uuid"
)

// UserResult is the outward representation of a user. Session tokens are
// deliberately never included.
type UserResult struct {
	Id                uuid.UUID                `json:"id"`
	CreatedAt         time.Time                `json:"createdAt"`
	Name              string                   `json:"name"`
	Age               int                      `json:"age"`
	Gender            string                   `json:"gender"`
	Email             string                   `json:"email"`
	Contact           string                   `json:"contact"`
	PermanentLocation string                   `json:"permanentLocation,omitempty"`
	Verified          bool                     `json:"verified"`
	EmergencyContacts []EmergencyContactResult `json:"emergencyContacts"`
	Todos             []TodoResult             `json:"todos"`
}

type EmergencyContactResult struct {
	ContactName   string `json:"contactName"`
	ContactNumber string `json:"contactNumber"`
	ContactEmail  string `json:"contactEmail,omitempty"`
}

type TodoResult struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	IsDone       bool      `json:"isDone"`
	ScheduledFor time.Time `json:"scheduledFor"`
}
