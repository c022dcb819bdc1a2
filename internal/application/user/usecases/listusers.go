package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*user.User, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	return users, nil
}
