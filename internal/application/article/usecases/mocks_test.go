package usecases

import (
	"context"

	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/domain/category"
	"github.com/roblesfd/helpdesk-backend/internal/shared/logger"
)

type mockArticleRepository struct {
	CreateFunc           func(ctx context.Context, a *article.Article) error
	GetByIDFunc          func(ctx context.Context, id uint) (*article.Article, error)
	UpdateFunc           func(ctx context.Context, a *article.Article) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListFunc             func(ctx context.Context) ([]*article.Article, error)
	FindByCategoryIDFunc func(ctx context.Context, categoryID uint) ([]*article.Article, error)
	SearchFunc           func(ctx context.Context, filter article.SearchFilter) ([]*article.Article, error)
}

func (m *mockArticleRepository) Create(ctx context.Context, a *article.Article) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) GetByID(ctx context.Context, id uint) (*article.Article, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockArticleRepository) Update(ctx context.Context, a *article.Article) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockArticleRepository) List(ctx context.Context) ([]*article.Article, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockArticleRepository) FindByCategoryID(ctx context.Context, categoryID uint) ([]*article.Article, error) {
	if m.FindByCategoryIDFunc != nil {
		return m.FindByCategoryIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockArticleRepository) Search(ctx context.Context, filter article.SearchFilter) ([]*article.Article, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	CreateFunc         func(ctx context.Context, c *category.Category) error
	GetByIDFunc        func(ctx context.Context, id uint) (*category.Category, error)
	DeleteFunc         func(ctx context.Context, id uint) error
	ListFunc           func(ctx context.Context) ([]*category.Category, error)
	FindByNameFoldFunc func(ctx context.Context, name string) (*category.Category, error)
}

func (m *mockCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) FindByNameFold(ctx context.Context, name string) (*category.Category, error) {
	if m.FindByNameFoldFunc != nil {
		return m.FindByNameFoldFunc(ctx, name)
	}
	return nil, nil
}

type mockContentRenderer struct {
	RenderSafeFunc func(markdown string) (string, error)
}

func (m *mockContentRenderer) RenderSafe(markdown string) (string, error) {
	if m.RenderSafeFunc != nil {
		return m.RenderSafeFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
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
