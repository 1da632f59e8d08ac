package interfaces

import (
	"context"

	"github.com/google/uuid"

	"demcare-service/internal/application/command"
	"demcare-service/internal/application/query"
)

type TodoService interface {
	AddTodo(ctx context.Context, userID uuid.UUID, addCommand *command.AddTodoCommand) (*command.AddTodoCommandResult, error)
	GetTodos(ctx context.Context, userID uuid.UUID) (*query.TodoListResult, error)
	UpdateTodo(ctx context.Context, userID uuid.UUID, todoID string, updateCommand *command.UpdateTodoCommand) (*command.UpdateTodoCommandResult, error)
	DeleteTodo(ctx context.Context, userID uuid.UUID, todoID string) error
}
