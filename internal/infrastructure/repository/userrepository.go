package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/mappers"
	"github.com/roblesfd/helpdesk-backend/internal/infrastructure/persistence/models"
	"github.com/roblesfd/helpdesk-backend/internal/shared/collation"
	db "github.com/roblesfd/helpdesk-backend/internal/shared/db"
	apperrors "github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewDuplicateKeyError("username or email already taken")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindByUsernameFold matches against the folded username key, so a lookup
// for "José" also finds "jose".
func (r *UserRepository) FindByUsernameFold(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("username_key = ?", collation.Fold(username)).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username key: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("email = ?", email).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) FindByConfirmationToken(ctx context.Context, token string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("confirmation_token = ?", token).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by confirmation token: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") forces zero values through, so deactivation and cleared
	// confirmation tokens persist.
	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("created_at").
		Updates(model)

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewDuplicateKeyError("username or email already taken")
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, len(userModels))
	for i, model := range userModels {
		u, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		users[i] = u
	}

	return users, nil
}
