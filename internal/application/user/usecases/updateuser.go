package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// UpdateUserCommand carries a user update. Username, email, active and
// role always overwrite the stored values; name, lastname and phone number
// are merged only when non-empty; a non-empty password is re-hashed.
type UpdateUserCommand struct {
	UserID      uint
	Username    string
	Password    string
	Email       string
	Name        string
	Lastname    string
	PhoneNumber string
	Active      bool
	Role        string
}

type UpdateUserResult struct {
	UserID   uint
	Username string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UpdateUserResult, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.UserID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid update user command", "error", err)
		return nil, err
	}

	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	// Renaming to a value that only collides with the record itself is not
	// a duplicate.
	duplicate, err := uc.userRepo.FindByUsernameFold(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username uniqueness", "error", err)
		return nil, err
	}
	if duplicate != nil && duplicate.ID() != existing.ID() {
		return nil, errors.NewDuplicateKeyError("username already taken")
	}

	existing.MergeContact(cmd.Name, cmd.Lastname, cmd.PhoneNumber)
	existing.SetActive(cmd.Active)

	if err := existing.ChangeUsername(cmd.Username); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.ChangeEmail(cmd.Email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.ChangeRole(user.Role(cmd.Role)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Password != "" {
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to process password")
		}
		if err := existing.SetPasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", existing.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated successfully", "user_id", existing.ID(), "username", existing.Username())

	return &UpdateUserResult{
		UserID:   existing.ID(),
		Username: existing.Username(),
	}, nil
}

func (uc *UpdateUserUseCase) validateCommand(cmd UpdateUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	if len(cmd.Username) == 0 {
		return errors.NewValidationError("username is required")
	}
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if !user.Role(cmd.Role).IsValid() {
		return errors.NewValidationError("invalid role")
	}
	return nil
}
