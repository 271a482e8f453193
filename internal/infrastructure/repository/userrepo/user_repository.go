package userrepo

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"modelhub-server/internal/domain/user"
	"modelhub-server/internal/infrastructure/database/entities"
	"modelhub-server/internal/utils/platformerrors"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	entity, err := mapUserToEntity(ctx, u)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to create user", err,
			"1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d")
	}
	u.ID = entity.ID
	u.CreatedAt = entity.CreatedAt
	u.UpdatedAt = entity.UpdatedAt
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var entity entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to query user by email", err,
			"6e7f8a9b-0c1d-4e2f-a3b4-c5d6e7f8a9b0")
	}
	return mapEntityToUser(&entity)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var entity entities.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to query user by id", err,
			"b1c2d3e4-f5a6-4b7c-8d9e-0f1a2b3c4d5e")
	}
	return mapEntityToUser(&entity)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	entity, err := mapUserToEntity(ctx, u)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError, "failed to update user", err,
			"7d8e9f0a-1b2c-4d3e-9f4a-5b6c7d8e9f0a")
	}
	return nil
}

func mapUserToEntity(ctx context.Context, u *user.User) (*entities.User, error) {
	entity := &entities.User{
		ID:               u.ID,
		Email:            u.Email,
		HashedPassword:   u.HashedPassword,
		SubscriptionPlan: u.SubscriptionPlan,
		IsActive:         u.IsActive,
		IsSuperuser:      u.IsSuperuser,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
	if len(u.Preferences) > 0 {
		raw, err := json.Marshal(u.Preferences)
		if err != nil {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal, "failed to encode user preferences", err,
				"2c3d4e5f-6a7b-4c8d-9e0f-1a2b3c4d5e6f")
		}
		entity.Preferences = datatypes.JSON(raw)
	}
	return entity, nil
}

func mapEntityToUser(e *entities.User) (*user.User, error) {
	u := &user.User{
		ID:               e.ID,
		Email:            e.Email,
		HashedPassword:   e.HashedPassword,
		SubscriptionPlan: e.SubscriptionPlan,
		IsActive:         e.IsActive,
		IsSuperuser:      e.IsSuperuser,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if len(e.Preferences) > 0 {
		if err := json.Unmarshal(e.Preferences, &u.Preferences); err != nil {
			return nil, platformerrors.NewError(context.Background(), platformerrors.LayerRepository,
				platformerrors.ErrorTypeInternal, "failed to decode user preferences", err,
				"8e9f0a1b-2c3d-4e4f-a5b6-c7d8e9f0a1b2")
		}
	}
	return u, nil
}
