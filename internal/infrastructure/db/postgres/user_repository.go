package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"demcare-service/internal/domain/entities"
	"demcare-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	userModel := UserModel{
		Id:         userEntity.Id,
		CreatedAt:  userEntity.CreatedAt,
		UpdatedAt:  userEntity.UpdatedAt,
		Name:       userEntity.Name,
		Age:        userEntity.Age,
		Gender:     string(userEntity.Gender),
		Email:      userEntity.Email,
		Contact:    userEntity.Contact,
		IsVerified: userEntity.IsVerified,

		PermanentLocation: userEntity.PermanentLocation,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return nil, err
	}

	// Read back the created user to ensure data integrity
	return r.FindById(ctx, userEntity.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	err := r.db.WithContext(ctx).
		Preload("Tokens", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("EmergencyContacts", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Todos", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("id = ?", id).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	err := r.db.WithContext(ctx).
		Preload("Tokens", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("EmergencyContacts", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Todos", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("email = ?", email).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", id).
		Update("is_verified", true).Error
}

func (r *UserRepository) AppendToken(ctx context.Context, id uuid.UUID, token string, limit int) ([]string, error) {
	var evicted []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&SessionTokenModel{UserId: id, Token: token}).Error; err != nil {
			return err
		}

		if limit <= 0 {
			return nil
		}

		var count int64
		if err := tx.Model(&SessionTokenModel{}).Where("user_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count <= int64(limit) {
			return nil
		}

		// Evict the oldest tokens beyond the cap.
		var stale []SessionTokenModel
		if err := tx.Where("user_id = ?", id).
			Order("id ASC").
			Limit(int(count) - limit).
			Find(&stale).Error; err != nil {
			return err
		}

		staleIds := make([]uint, 0, len(stale))
		for _, t := range stale {
			staleIds = append(staleIds, t.Id)
			evicted = append(evicted, t.Token)
		}

		return tx.Delete(&SessionTokenModel{}, staleIds).Error
	})
	if err != nil {
		return nil, err
	}
	return evicted, nil
}

func (r *UserRepository) HasToken(ctx context.Context, id uuid.UUID, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SessionTokenModel{}).
		Where("user_id = ? AND token = ?", id, token).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) ReplaceEmergencyContacts(ctx context.Context, id uuid.UUID, contacts []entities.EmergencyContact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&EmergencyContactModel{}).Error; err != nil {
			return err
		}

		models := make([]EmergencyContactModel, 0, len(contacts))
		for _, contact := range contacts {
			models = append(models, EmergencyContactModel{
				UserId:        id,
				ContactName:   contact.ContactName,
				ContactNumber: contact.ContactNumber,
				ContactEmail:  contact.ContactEmail,
			})
		}

		if len(models) == 0 {
			return nil
		}
		return tx.Create(&models).Error
	})
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	tokens := make([]string, 0, len(userModel.Tokens))
	for _, t := range userModel.Tokens {
		tokens = append(tokens, t.Token)
	}

	contacts := make([]entities.EmergencyContact, 0, len(userModel.EmergencyContacts))
	for _, c := range userModel.EmergencyContacts {
		contacts = append(contacts, entities.EmergencyContact{
			ContactName:   c.ContactName,
			ContactNumber: c.ContactNumber,
			ContactEmail:  c.ContactEmail,
		})
	}

	todos := make([]entities.TodoItem, 0, len(userModel.Todos))
	for _, t := range userModel.Todos {
		todos = append(todos, mapTodoToEntity(&t))
	}

	return &entities.User{
		Id:                userModel.Id,
		CreatedAt:         userModel.CreatedAt,
		UpdatedAt:         userModel.UpdatedAt,
		Name:              userModel.Name,
		Age:               userModel.Age,
		Gender:            entities.Gender(userModel.Gender),
		Email:             userModel.Email,
		Contact:           userModel.Contact,
		PermanentLocation: userModel.PermanentLocation,
		IsVerified:        userModel.IsVerified,
		Tokens:            tokens,
		EmergencyContacts: contacts,
		Todos:             todos,
	}
}
