package command

import "demcare-service/internal/application/common"

type EmergencyContactInput struct {
	ContactName   string `json:"contactName"`
	ContactNumber string `json:"contactNumber"`
	ContactEmail  string `json:"contactEmail,omitempty"`
}

type UpdateEmergencyContactsCommand struct {
	EmergencyContacts []EmergencyContactInput `json:"emergencyContacts"`
}

type UpdateEmergencyContactsCommandResult struct {
	User *common.UserResult `json:"user"`
}
