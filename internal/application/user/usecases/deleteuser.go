package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/comment"
	"github.com/roblesfd/helpdesk-backend/internal/domain/notification"
	"github.com/roblesfd/helpdesk-backend/internal/domain/ticket"
	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// TransactionManager runs a function inside a single store transaction so
// every cascade step commits or rolls back together.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DeleteUserCommand struct {
	UserID uint
}

// DeleteUserResult reports the full cascade outcome: the deleted user plus
// how many dependent records were removed alongside it.
type DeleteUserResult struct {
	UserID               uint
	Username             string
	NotificationsDeleted int64
	CommentsDeleted      int64
}

type DeleteUserUseCase struct {
	userRepo         user.Repository
	ticketRepo       ticket.Repository
	commentRepo      comment.Repository
	notificationRepo notification.Repository
	txManager        TransactionManager
	logger           logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	ticketRepo ticket.Repository,
	commentRepo comment.Repository,
	notificationRepo notification.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:         userRepo,
		ticketRepo:       ticketRepo,
		commentRepo:      commentRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID)

	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	// A user who still owns tickets cannot be deleted; the ticket keeps
	// its creator reference valid.
	hasTickets, err := uc.ticketRepo.ExistsByCreatorID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to check tickets for user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if hasTickets {
		return nil, errors.NewReferentialConflictError("user has tickets and cannot be deleted")
	}

	result := &DeleteUserResult{
		UserID:   existing.ID(),
		Username: existing.Username(),
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		deletedNotifications, err := uc.notificationRepo.DeleteByRecipient(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		result.NotificationsDeleted = deletedNotifications

		deletedComments, err := uc.commentRepo.DeleteByUserID(txCtx, cmd.UserID)
		if err != nil {
			return err
		}
		result.CommentsDeleted = deletedComments

		return uc.userRepo.Delete(txCtx, cmd.UserID)
	})
	if err != nil {
		uc.logger.Errorw("user deletion cascade failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to delete user")
	}

	uc.logger.Infow("user deleted successfully",
		"user_id", result.UserID,
		"username", result.Username,
		"notifications_deleted", result.NotificationsDeleted,
		"comments_deleted", result.CommentsDeleted)

	return result, nil
}
