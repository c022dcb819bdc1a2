package article

import "context"

// SearchFilter narrows article searches. Query matches title or content
// case-insensitively; TagIDs matches articles carrying any of the tags.
type SearchFilter struct {
	Query  string
	TagIDs []uint
}

// Repository defines the interface for article data operations.
type Repository interface {
	// Create creates a new article and assigns its id
	Create(ctx context.Context, a *Article) error

	// GetByID retrieves an article by id
	GetByID(ctx context.Context, id uint) (*Article, error)

	// Update persists changes to an existing article
	Update(ctx context.Context, a *Article) error

	// Delete removes an article by id
	Delete(ctx context.Context, id uint) error

	// List retrieves all articles
	List(ctx context.Context) ([]*Article, error)

	// FindByCategoryID retrieves every article referencing the category
	FindByCategoryID(ctx context.Context, categoryID uint) ([]*Article, error)

	// Search retrieves articles matching the filter
	Search(ctx context.Context, filter SearchFilter) ([]*Article, error)
}
