package repositories

import (
	"context"

	"github.com/google/uuid"

	"demcare-service/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id uuid.UUID) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	MarkVerified(ctx context.Context, id uuid.UUID) error
	// AppendToken adds a session token to the user's token list. When limit
	// is positive the oldest tokens beyond it are evicted and returned so
	// the caller can revoke them everywhere else they live.
	AppendToken(ctx context.Context, id uuid.UUID, token string, limit int) ([]string, error)
	HasToken(ctx context.Context, id uuid.UUID, token string) (bool, error)
	ReplaceEmergencyContacts(ctx context.Context, id uuid.UUID, contacts []entities.EmergencyContact) error
}
