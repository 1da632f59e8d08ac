package interfaces

import (
	"context"

	"github.com/google/uuid"

	"demcare-service/internal/application/command"
)

type AlertService interface {
	SendAlert(ctx context.Context, userID uuid.UUID, alertCommand *command.SendAlertCommand) (*command.SendAlertCommandResult, error)
}
