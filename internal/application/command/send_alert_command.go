package command

import "demcare-service/internal/application/common"

type SendAlertCommand struct {
	Message string `json:"message"`
}

type SendAlertCommandResult struct {
	EmergencyContacts []common.EmergencyContactResult `json:"emergencyContacts"`
}
