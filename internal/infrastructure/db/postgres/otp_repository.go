package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"demcare-service/internal/domain/entities"
	"demcare-service/internal/domain/repositories"
)

type OtpRepository struct {
	db *gorm.DB
}

func NewOtpRepository(db *gorm.DB) repositories.OtpRepository {
	return &OtpRepository{db: db}
}

func (r *OtpRepository) Create(ctx context.Context, record *entities.OtpRecord) (*entities.OtpRecord, error) {
	otpModel := OtpModel{
		Id:        record.Id,
		Email:     record.Email,
		Code:      record.Code,
		Active:    record.Active,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}

	if err := r.db.WithContext(ctx).Create(&otpModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, record.Id)
}

func (r *OtpRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.OtpRecord, error) {
	var otpModel OtpModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&otpModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.OtpRecord{
		Id:        otpModel.Id,
		Email:     otpModel.Email,
		Code:      otpModel.Code,
		Active:    otpModel.Active,
		CreatedAt: otpModel.CreatedAt,
		ExpiresAt: otpModel.ExpiresAt,
	}, nil
}

func (r *OtpRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&OtpModel{}).
		Where("id = ?", id).
		Update("active", false).Error
}
