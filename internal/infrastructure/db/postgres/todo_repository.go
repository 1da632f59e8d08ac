package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"demcare-service/internal/domain/entities"
	"demcare-service/internal/domain/repositories"
)

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) repositories.TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Add(ctx context.Context, userID uuid.UUID, todo *entities.TodoItem) (*entities.TodoItem, error) {
	todoModel := TodoModel{
		Id:           todo.Id,
		UserId:       userID,
		Title:        todo.Title,
		Description:  todo.Description,
		IsDone:       todo.IsDone,
		ScheduledFor: todo.ScheduledFor,
		CreatedAt:    todo.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&todoModel).Error; err != nil {
		return nil, err
	}

	created := mapTodoToEntity(&todoModel)
	return &created, nil
}

func (r *TodoRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entities.TodoItem, error) {
	var todoModels []TodoModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&todoModels).Error
	if err != nil {
		return nil, err
	}

	todos := make([]entities.TodoItem, 0, len(todoModels))
	for _, m := range todoModels {
		todos = append(todos, mapTodoToEntity(&m))
	}
	return todos, nil
}

func (r *TodoRepository) SetDone(ctx context.Context, userID, todoID uuid.UUID, done bool) (*entities.TodoItem, error) {
	var todoModel TodoModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", todoID, userID).
		First(&todoModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&todoModel).
		Update("is_done", done).Error; err != nil {
		return nil, err
	}

	todoModel.IsDone = done
	updated := mapTodoToEntity(&todoModel)
	return &updated, nil
}

func (r *TodoRepository) Delete(ctx context.Context, userID, todoID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", todoID, userID).
		Delete(&TodoModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *TodoRepository) ResetAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&TodoModel{}).
		Where("is_done = ?", true).
		Update("is_done", false)
	return res.RowsAffected, res.Error
}

func mapTodoToEntity(todoModel *TodoModel) entities.TodoItem {
	return entities.TodoItem{
		Id:           todoModel.Id,
		Title:        todoModel.Title,
		Description:  todoModel.Description,
		IsDone:       todoModel.IsDone,
		ScheduledFor: todoModel.ScheduledFor,
		CreatedAt:    todoModel.CreatedAt,
	}
}
