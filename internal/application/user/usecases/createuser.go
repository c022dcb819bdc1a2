package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// PasswordHasher hashes plaintext passwords before storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// TokenGenerator produces opaque confirmation tokens for client-created
// accounts.
type TokenGenerator interface {
	Generate() (string, error)
}

// ConfirmationSender delivers the account-confirmation email. Delivery is
// best effort; a failed send never fails the create.
type ConfirmationSender interface {
	SendConfirmationEmail(username, email, token string) error
}

type CreateUserCommand struct {
	Username    string
	Password    string
	Email       string
	Name        string
	Lastname    string
	PhoneNumber string
	Active      bool
	Role        string
	IsClient    bool
}

type CreateUserResult struct {
	UserID              uint
	Username            string
	PendingConfirmation bool
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenGenerator
	mailer   ConfirmationSender
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenGenerator,
	mailer ConfirmationSender,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create user command", "error", err)
		return nil, err
	}

	// Username uniqueness is locale-folded: "Ana" collides with "ana" and
	// "aná". Email uniqueness is exact.
	duplicate, err := uc.userRepo.FindByUsernameFold(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username uniqueness", "error", err)
		return nil, err
	}
	if duplicate != nil {
		return nil, errors.NewDuplicateKeyError("username already taken")
	}

	emailOwner, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, err
	}
	if emailOwner != nil {
		return nil, errors.NewDuplicateKeyError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Username, hash, cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newUser.MergeContact(cmd.Name, cmd.Lastname, cmd.PhoneNumber)
	newUser.SetActive(cmd.Active)

	if cmd.Role != "" {
		if err := newUser.ChangeRole(user.Role(cmd.Role)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	var token string
	if cmd.IsClient {
		token, err = uc.tokens.Generate()
		if err != nil {
			uc.logger.Errorw("failed to generate confirmation token", "error", err)
			return nil, errors.NewInternalError("failed to generate confirmation token")
		}
		if err := newUser.SetConfirmationToken(token); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	if cmd.IsClient {
		if err := uc.mailer.SendConfirmationEmail(newUser.Username(), newUser.Email(), token); err != nil {
			uc.logger.Warnw("failed to send confirmation email", "user_id", newUser.ID(), "error", err)
		}
	}

	uc.logger.Infow("user created successfully", "user_id", newUser.ID(), "username", newUser.Username())

	return &CreateUserResult{
		UserID:              newUser.ID(),
		Username:            newUser.Username(),
		PendingConfirmation: cmd.IsClient,
	}, nil
}

func (uc *CreateUserUseCase) validateCommand(cmd CreateUserCommand) error {
	if len(cmd.Username) == 0 {
		return errors.NewValidationError("username is required")
	}
	if len(cmd.Password) == 0 {
		return errors.NewValidationError("password is required")
	}
	if len(cmd.Email) == 0 {
		return errors.NewValidationError("email is required")
	}
	if cmd.Role != "" && !user.Role(cmd.Role).IsValid() {
		return errors.NewValidationError("invalid role")
	}
	return nil
}
