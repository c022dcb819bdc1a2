package usecases

import (
	"context"
	"time"

	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/errors"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, username, role string) (string, error)
}

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	UserID      uint
	Username    string
	Role        string
	AccessToken string
}

type LoginUseCase struct {
	userRepo user.Repository
	verifier PasswordVerifier
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if len(cmd.Username) == 0 || len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("username and password are required")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		// Do not reveal whether the account exists.
		uc.logger.Warnw("login attempt for unknown user", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if !existing.Active() {
		return nil, errors.NewUnauthorizedError("account is not active")
	}

	if err := uc.verifier.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "user_id", existing.ID())
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, err := uc.issuer.Issue(existing.ID(), existing.Username(), existing.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	existing.RecordLogin(time.Now())
	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Warnw("failed to stamp last login", "user_id", existing.ID(), "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "username", existing.Username())

	return &LoginResult{
		UserID:      existing.ID(),
		Username:    existing.Username(),
		Role:        existing.Role().String(),
		AccessToken: token,
	}, nil
}
