package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	apperrors "github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

func TestUpdateUserUseCase_Execute_Success(t *testing.T) {
	var updated *user.User
	mockRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return makeUser(t, 5, "ana", "ana@example.com"), nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		},
	}
	hashed := false
	mockHasher := &mockPasswordHasher{
		HashFunc: func(password string) (string, error) {
			hashed = true
			return "rehashed", nil
		},
	}

	useCase := NewUpdateUserUseCase(mockRepo, mockHasher, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateUserCommand{
		UserID:   5,
		Username: "ana.garcia",
		Email:    "ana.garcia@example.com",
		Name:     "Ana",
		Lastname: "García",
		Role:     "agente",
		Active:   true,
		Password: "newsecret",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(5), result.UserID)
	assert.Equal(t, "ana.garcia", result.Username)
	assert.True(t, hashed)

	require.NotNil(t, updated)
	assert.Equal(t, "ana.garcia@example.com", updated.Email())
	assert.Equal(t, "Ana García", updated.FullName())
	assert.Equal(t, user.RoleAgente, updated.Role())
	assert.Equal(t, "rehashed", updated.PasswordHash())
}

func TestUpdateUserUseCase_Execute_EmptyPasswordKeepsHash(t *testing.T) {
	var updated *user.User
	mockRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return makeUser(t, 5, "ana", "ana@example.com"), nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		},
	}
	mockHasher := &mockPasswordHasher{
		HashFunc: func(password string) (string, error) {
			t.Fatal("hasher must not run for an empty password")
			return "", nil
		},
	}

	useCase := NewUpdateUserUseCase(mockRepo, mockHasher, &mockLogger{})
	_, err := useCase.Execute(context.Background(), UpdateUserCommand{
		UserID:   5,
		Username: "ana",
		Email:    "ana@example.com",
		Role:     "usuario",
		Active:   true,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "hash", updated.PasswordHash())
}

func TestUpdateUserUseCase_Execute_SelfRenameIsNotDuplicate(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return makeUser(t, 5, "ana", "ana@example.com"), nil
		},
		FindByUsernameFoldFunc: func(ctx context.Context, username string) (*user.User, error) {
			// "Ana" folds onto the record being updated itself.
			return makeUser(t, 5, "ana", "ana@example.com"), nil
		},
	}

	useCase := NewUpdateUserUseCase(mockRepo, &mockPasswordHasher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateUserCommand{
		UserID:   5,
		Username: "Ana",
		Email:    "ana@example.com",
		Role:     "usuario",
		Active:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana", result.Username)
}

func TestUpdateUserUseCase_Execute_DuplicateUsername(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return makeUser(t, 5, "ana", "ana@example.com"), nil
		},
		FindByUsernameFoldFunc: func(ctx context.Context, username string) (*user.User, error) {
			return makeUser(t, 9, "pedro", "pedro@example.com"), nil
		},
	}

	useCase := NewUpdateUserUseCase(mockRepo, &mockPasswordHasher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateUserCommand{
		UserID:   5,
		Username: "Pedro",
		Email:    "ana@example.com",
		Role:     "usuario",
		Active:   true,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsDuplicateKeyError(err))
}

func TestUpdateUserUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}

	useCase := NewUpdateUserUseCase(mockRepo, &mockPasswordHasher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateUserCommand{
		UserID:   99,
		Username: "nadie",
		Email:    "nadie@example.com",
		Role:     "usuario",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUpdateUserUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       UpdateUserCommand
		expectedError string
	}{
		{
			name:          "missing user id",
			command:       UpdateUserCommand{Username: "ana", Email: "a@example.com", Role: "usuario"},
			expectedError: "user ID is required",
		},
		{
			name:          "missing username",
			command:       UpdateUserCommand{UserID: 5, Email: "a@example.com", Role: "usuario"},
			expectedError: "username is required",
		},
		{
			name:          "missing email",
			command:       UpdateUserCommand{UserID: 5, Username: "ana", Role: "usuario"},
			expectedError: "email is required",
		},
		{
			name:          "invalid role",
			command:       UpdateUserCommand{UserID: 5, Username: "ana", Email: "a@example.com", Role: "jefe"},
			expectedError: "invalid role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewUpdateUserUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}
