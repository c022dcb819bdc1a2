package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type ConfirmAccountCommand struct {
	Token string
}

type ConfirmAccountResult struct {
	UserID   uint
	Username string
}

type ConfirmAccountUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewConfirmAccountUseCase(userRepo user.Repository, logger logger.Interface) *ConfirmAccountUseCase {
	return &ConfirmAccountUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ConfirmAccountUseCase) Execute(ctx context.Context, cmd ConfirmAccountCommand) (*ConfirmAccountResult, error) {
	if len(cmd.Token) == 0 {
		return nil, errors.NewValidationError("confirmation token is required")
	}

	pending, err := uc.userRepo.FindByConfirmationToken(ctx, cmd.Token)
	if err != nil {
		uc.logger.Errorw("failed to look up confirmation token", "error", err)
		return nil, err
	}
	if pending == nil {
		return nil, errors.NewNotFoundError("invalid confirmation token")
	}

	if err := pending.Confirm(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, pending); err != nil {
		uc.logger.Errorw("failed to confirm account", "user_id", pending.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("account confirmed", "user_id", pending.ID(), "username", pending.Username())

	return &ConfirmAccountResult{
		UserID:   pending.ID(),
		Username: pending.Username(),
	}, nil
}
