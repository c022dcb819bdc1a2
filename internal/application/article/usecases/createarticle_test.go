package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roblesfd/helpdesk-backend/internal/domain/article"
	"github.com/roblesfd/helpdesk-backend/internal/domain/category"
	apperrors "github.com/roblesfd/helpdesk-backend/internal/shared/errors"
)

func makeCategory(t *testing.T, id uint, name string) *category.Category {
	t.Helper()
	c, err := category.ReconstructCategory(id, name, time.Now())
	require.NoError(t, err)
	return c
}

func TestCreateArticleUseCase_Execute_Success(t *testing.T) {
	var created *article.Article
	mockArticles := &mockArticleRepository{
		CreateFunc: func(ctx context.Context, a *article.Article) error {
			if err := a.SetID(10); err != nil {
				return err
			}
			created = a
			return nil
		},
	}
	mockCategories := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			return makeCategory(t, 2, "Facturación"), nil
		},
	}

	useCase := NewCreateArticleUseCase(mockArticles, mockCategories, &mockContentRenderer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateArticleCommand{
		AuthorID:   3,
		Title:      "Cómo leer tu factura",
		Content:    "# Factura\n\nDesglose de conceptos.",
		CategoryID: 2,
		TagIDs:     []uint{6, 6, 7},
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(10), result.ArticleID)

	require.NotNil(t, created)
	assert.Equal(t, uint(3), created.AuthorID())
	require.NotNil(t, created.CategoryID())
	assert.Equal(t, uint(2), *created.CategoryID())
	assert.ElementsMatch(t, []uint{6, 7}, created.TagIDs())
}

func TestCreateArticleUseCase_Execute_UnknownCategory(t *testing.T) {
	mockCategories := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			return nil, apperrors.NewNotFoundError("category not found")
		},
	}

	useCase := NewCreateArticleUseCase(&mockArticleRepository{}, mockCategories, &mockContentRenderer{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateArticleCommand{
		AuthorID:   3,
		Title:      "Artículo perdido",
		Content:    "contenido",
		CategoryID: 99,
		TagIDs:     []uint{1},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreateArticleUseCase_Execute_UnrenderableContent(t *testing.T) {
	mockCategories := &mockCategoryRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*category.Category, error) {
			return makeCategory(t, 2, "Facturación"), nil
		},
	}
	mockArticles := &mockArticleRepository{
		CreateFunc: func(ctx context.Context, a *article.Article) error {
			t.Fatal("create must not run when the body cannot render")
			return nil
		},
	}
	mockRenderer := &mockContentRenderer{
		RenderSafeFunc: func(markdown string) (string, error) {
			return "", errors.New("render failed")
		},
	}

	useCase := NewCreateArticleUseCase(mockArticles, mockCategories, mockRenderer, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateArticleCommand{
		AuthorID:   3,
		Title:      "Artículo roto",
		Content:    "contenido",
		CategoryID: 2,
		TagIDs:     []uint{1},
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "content is not valid markdown")
}

func TestCreateArticleUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       CreateArticleCommand
		expectedError string
	}{
		{
			name:          "missing author",
			command:       CreateArticleCommand{Title: "t", Content: "c", CategoryID: 2, TagIDs: []uint{1}},
			expectedError: "author ID is required",
		},
		{
			name:          "missing title",
			command:       CreateArticleCommand{AuthorID: 3, Content: "c", CategoryID: 2, TagIDs: []uint{1}},
			expectedError: "title is required",
		},
		{
			name:          "missing content",
			command:       CreateArticleCommand{AuthorID: 3, Title: "t", CategoryID: 2, TagIDs: []uint{1}},
			expectedError: "content is required",
		},
		{
			name:          "missing category",
			command:       CreateArticleCommand{AuthorID: 3, Title: "t", Content: "c", TagIDs: []uint{1}},
			expectedError: "category ID is required",
		},
		{
			name:          "missing tags",
			command:       CreateArticleCommand{AuthorID: 3, Title: "t", Content: "c", CategoryID: 2},
			expectedError: "at least one tag is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateArticleUseCase(&mockArticleRepository{}, &mockCategoryRepository{}, &mockContentRenderer{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}
