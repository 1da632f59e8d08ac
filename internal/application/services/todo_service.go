package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"demcare-service/internal/application/command"
	"demcare-service/internal/application/common"
	"demcare-service/internal/application/interfaces"
	"demcare-service/internal/application/mapper"
	"demcare-service/internal/application/query"
	"demcare-service/internal/domain"
	"demcare-service/internal/domain/entities"
	"demcare-service/internal/domain/repositories"
)

// Accepted layouts for the scheduledFor field.
var scheduledForLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type TodoService struct {
	userRepo repositories.UserRepository
	todoRepo repositories.TodoRepository
}

func NewTodoService(userRepo repositories.UserRepository, todoRepo repositories.TodoRepository) interfaces.TodoService {
	return &TodoService{
		userRepo: userRepo,
		todoRepo: todoRepo,
	}
}

func (s *TodoService) AddTodo(ctx context.Context, userID uuid.UUID, addCommand *command.AddTodoCommand) (*command.AddTodoCommandResult, error) {
	if addCommand.Title == "" {
		return nil, domain.NewValidationError("Title is required for a to-do item")
	}

	// Reject unparsable schedules before anything is persisted.
	scheduledFor, err := parseScheduledFor(addCommand.ScheduledFor)
	if err != nil {
		return nil, domain.NewValidationError("scheduledFor must be a valid date-time string")
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	todo := entities.NewTodoItem(addCommand.Title, addCommand.Description, scheduledFor)
	if _, err := s.todoRepo.Add(ctx, userID, todo); err != nil {
		return nil, err
	}

	updatedUser, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &command.AddTodoCommandResult{
		User: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *TodoService) GetTodos(ctx context.Context, userID uuid.UUID) (*query.TodoListResult, error) {
	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	todos, err := s.todoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]common.TodoResult, 0, len(todos))
	for _, todo := range todos {
		results = append(results, mapper.NewTodoResultFromEntity(todo))
	}

	return &query.TodoListResult{Todos: results}, nil
}

func (s *TodoService) UpdateTodo(ctx context.Context, userID uuid.UUID, todoID string, updateCommand *command.UpdateTodoCommand) (*command.UpdateTodoCommandResult, error) {
	if updateCommand.IsDone == nil {
		return nil, domain.NewValidationError("isDone must be a boolean value")
	}

	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	id, err := uuid.Parse(todoID)
	if err != nil {
		return nil, domain.ErrTodoNotFound
	}

	todo, err := s.todoRepo.SetDone(ctx, userID, id, *updateCommand.IsDone)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, domain.ErrTodoNotFound
	}

	result := mapper.NewTodoResultFromEntity(*todo)
	return &command.UpdateTodoCommandResult{Todo: &result}, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, userID uuid.UUID, todoID string) error {
	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	id, err := uuid.Parse(todoID)
	if err != nil {
		return domain.ErrTodoNotFound
	}

	deleted, err := s.todoRepo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTodoNotFound
	}

	return nil
}

func parseScheduledFor(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range scheduledForLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
