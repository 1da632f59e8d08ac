package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"demcare-service/internal/application/command"
	"demcare-service/internal/application/interfaces"
	"demcare-service/internal/application/mapper"
	"demcare-service/internal/domain"
	"demcare-service/internal/domain/repositories"
	"demcare-service/internal/infrastructure"
)

const alertSubject = "Emergency Alert: Distance from Home"

type AlertService struct {
	userRepo repositories.UserRepository
	notifier infrastructure.Notifier
}

func NewAlertService(userRepo repositories.UserRepository, notifier infrastructure.Notifier) interfaces.AlertService {
	return &AlertService{
		userRepo: userRepo,
		notifier: notifier,
	}
}

// SendAlert broadcasts the message by email to every emergency contact of
// the user that has an email address on record.
func (s *AlertService) SendAlert(ctx context.Context, userID uuid.UUID, alertCommand *command.SendAlertCommand) (*command.SendAlertCommandResult, error) {
	if alertCommand.Message == "" {
		return nil, domain.NewValidationError("Message content is required")
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if len(user.EmergencyContacts) == 0 {
		return nil, domain.ErrNoEmergencyContacts
	}

	body := fmt.Sprintf("Alert from %s:\n%s\n\nPlease check on them immediately.", user.Name, alertCommand.Message)

	for _, contact := range user.EmergencyContacts {
		if contact.ContactEmail == "" {
			continue
		}
		if err := s.notifier.Send(ctx, contact.ContactEmail, alertSubject, body); err != nil {
			return nil, err
		}
	}

	result := &command.SendAlertCommandResult{}
	for _, contact := range user.EmergencyContacts {
		result.EmergencyContacts = append(result.EmergencyContacts, mapper.NewEmergencyContactResult(contact))
	}
	return result, nil
}
