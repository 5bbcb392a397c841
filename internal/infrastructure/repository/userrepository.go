package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"klevant/internal/domain/user"
	vo "klevant/internal/domain/user/valueobjects"
	"klevant/internal/infrastructure/persistence/mappers"
	"klevant/internal/infrastructure/persistence/models"
	"klevant/internal/shared/db"
	apperrors "klevant/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(u)
	if err := conn.Create(model).Error; err != nil {
		return err
	}
	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(u)
	result := conn.Model(&models.UserModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":          model.Name,
		"email":         model.Email,
		"password_hash": model.PasswordHash,
		"mobile":        model.Mobile,
		"address":       model.Address,
		"active":        model.Active,
		"updated_at":    model.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.UserModel
	if err := conn.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.UserModel
	if err := conn.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ListByRole(ctx context.Context, role vo.Role) ([]*user.User, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var userModels []models.UserModel
	err := conn.
		Where("role = ?", role.String()).
		Order("name ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) CountByRole(ctx context.Context, role vo.Role) (int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var count int64
	err := conn.Model(&models.UserModel{}).Where("role = ?", role.String()).Count(&count).Error
	return count, err
}
