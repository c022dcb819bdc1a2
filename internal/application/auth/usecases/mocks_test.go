package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/user"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc                  func(ctx context.Context, u *user.User) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc           func(ctx context.Context, username string) (*user.User, error)
	FindByUsernameFoldFunc      func(ctx context.Context, username string) (*user.User, error)
	FindByEmailFunc             func(ctx context.Context, email string) (*user.User, error)
	FindByConfirmationTokenFunc func(ctx context.Context, token string) (*user.User, error)
	UpdateFunc                  func(ctx context.Context, u *user.User) error
	DeleteFunc                  func(ctx context.Context, id uint) error
	ListFunc                    func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsernameFold(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFoldFunc != nil {
		return m.FindByUsernameFoldFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByConfirmationToken(ctx context.Context, token string) (*user.User, error) {
	if m.FindByConfirmationTokenFunc != nil {
		return m.FindByConfirmationTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockPasswordVerifier struct {
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordVerifier) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	IssueFunc func(userID uint, username, role string) (string, error)
}

func (m *mockTokenIssuer) Issue(userID uint, username, role string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, username, role)
	}
	return "access-token", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
