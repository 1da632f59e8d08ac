package repositories

import (
	"context"

	"github.com/google/uuid"

	"demcare-service/internal/domain/entities"
)

type TodoRepository interface {
	Add(ctx context.Context, userID uuid.UUID, todo *entities.TodoItem) (*entities.TodoItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.TodoItem, error)
	// SetDone returns (nil, nil) when no todo with the given id belongs to
	// the user.
	SetDone(ctx context.Context, userID, todoID uuid.UUID, done bool) (*entities.TodoItem, error)
	// Delete reports whether a matching todo existed.
	Delete(ctx context.Context, userID, todoID uuid.UUID) (bool, error)
	// ResetAll clears the completion flag on every todo of every user in a
	// single bulk update and returns the number of rows touched.
	ResetAll(ctx context.Context) (int64, error)
}
