package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*user.User, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Warnw("failed to get user", "user_id", query.UserID, "error", err)
		return nil, err
	}

	return u, nil
}
