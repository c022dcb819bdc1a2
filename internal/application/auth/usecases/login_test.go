package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	apperrors "github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

func makeUser(t *testing.T, id uint, username string, active bool) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, username, "hash", username+"@example.com", "", "", "", active, user.RoleUsuario, "", nil, nil, time.Now())
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute_Success(t *testing.T) {
	var updated *user.User
	mockRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return makeUser(t, 5, "ana", true), nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		},
	}
	mockIssuer := &mockTokenIssuer{
		IssueFunc: func(userID uint, username, role string) (string, error) {
			assert.Equal(t, uint(5), userID)
			assert.Equal(t, "ana", username)
			assert.Equal(t, "usuario", role)
			return "signed-token", nil
		},
	}

	useCase := NewLoginUseCase(mockRepo, &mockPasswordVerifier{}, mockIssuer, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{Username: "ana", Password: "secret"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(5), result.UserID)
	assert.Equal(t, "ana", result.Username)
	assert.Equal(t, "usuario", result.Role)
	assert.Equal(t, "signed-token", result.AccessToken)

	require.NotNil(t, updated)
	assert.NotNil(t, updated.LastLogin())
}

func TestLoginUseCase_Execute_UnknownUser(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}

	useCase := NewLoginUseCase(mockRepo, &mockPasswordVerifier{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{Username: "nadie", Password: "secret"})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	// The response must not reveal whether the account exists.
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginUseCase_Execute_InactiveAccount(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return makeUser(t, 5, "ana", false), nil
		},
	}

	useCase := NewLoginUseCase(mockRepo, &mockPasswordVerifier{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{Username: "ana", Password: "secret"})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Contains(t, err.Error(), "account is not active")
}

func TestLoginUseCase_Execute_WrongPassword(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return makeUser(t, 5, "ana", true), nil
		},
	}
	mockVerifier := &mockPasswordVerifier{
		VerifyFunc: func(password, hash string) error {
			return errors.New("hash mismatch")
		},
	}

	useCase := NewLoginUseCase(mockRepo, mockVerifier, &mockTokenIssuer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{Username: "ana", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginUseCase_Execute_IssuerFailure(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return makeUser(t, 5, "ana", true), nil
		},
	}
	mockIssuer := &mockTokenIssuer{
		IssueFunc: func(userID uint, username, role string) (string, error) {
			return "", errors.New("signing failed")
		},
	}

	useCase := NewLoginUseCase(mockRepo, &mockPasswordVerifier{}, mockIssuer, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{Username: "ana", Password: "secret"})

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestLoginUseCase_Execute_StampFailureStillSucceeds(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
			return makeUser(t, 5, "ana", true), nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			return errors.New("db unavailable")
		},
	}

	useCase := NewLoginUseCase(mockRepo, &mockPasswordVerifier{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{Username: "ana", Password: "secret"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "access-token", result.AccessToken)
}

func TestLoginUseCase_Execute_MissingCredentials(t *testing.T) {
	useCase := NewLoginUseCase(&mockUserRepository{}, &mockPasswordVerifier{}, &mockTokenIssuer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), LoginCommand{Username: "ana"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}
