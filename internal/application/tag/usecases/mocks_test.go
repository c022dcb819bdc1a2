package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/tag"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type mockTagRepository struct {
	CreateFunc         func(ctx context.Context, t *tag.Tag) error
	GetByIDFunc        func(ctx context.Context, id uint) (*tag.Tag, error)
	DeleteFunc         func(ctx context.Context, id uint) error
	ListFunc           func(ctx context.Context) ([]*tag.Tag, error)
	FindByNameFoldFunc func(ctx context.Context, name string) (*tag.Tag, error)
}

func (m *mockTagRepository) Create(ctx context.Context, t *tag.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTagRepository) GetByID(ctx context.Context, id uint) (*tag.Tag, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTagRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTagRepository) List(ctx context.Context) ([]*tag.Tag, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTagRepository) FindByNameFold(ctx context.Context, name string) (*tag.Tag, error) {
	if m.FindByNameFoldFunc != nil {
		return m.FindByNameFoldFunc(ctx, name)
	}
	return nil, nil
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
