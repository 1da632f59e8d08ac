package repositories

import (
	"context"

	"github.com/google/uuid"

	"demcare-service/internal/domain/entities"
)

type OtpRepository interface {
	Create(ctx context.Context, record *entities.OtpRecord) (*entities.OtpRecord, error)
	// FindById returns (nil, nil) when no record exists for the handle.
	FindById(ctx context.Context, id uuid.UUID) (*entities.OtpRecord, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}
