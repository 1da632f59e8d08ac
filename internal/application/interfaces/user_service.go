package interfaces

import (
	"context"

	"github.com/google/uuid"

	"demcare-service/internal/application/command"
	"demcare-service/internal/application/query"
)

type UserService interface {
	Signup(ctx context.Context, createCommand *command.CreateUserCommand) (*command.CreateUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	VerifyOTP(ctx context.Context, verifyCommand *command.VerifyOTPCommand) (*command.VerifyOTPCommandResult, error)
	UpdateEmergencyContacts(ctx context.Context, userID uuid.UUID, updateCommand *command.UpdateEmergencyContactsCommand) (*command.UpdateEmergencyContactsCommandResult, error)
	GetLocation(ctx context.Context, userID uuid.UUID) (*query.UserLocationResult, error)
}
