package category

import "context"

// Repository defines the interface for category data operations.
type Repository interface {
	// Create creates a new category and assigns its id
	Create(ctx context.Context, c *Category) error

	// GetByID retrieves a category by id
	GetByID(ctx context.Context, id uint) (*Category, error)

	// Delete removes a category by id
	Delete(ctx context.Context, id uint) error

	// List retrieves all categories
	List(ctx context.Context) ([]*Category, error)

	// FindByNameFold looks up a category whose name collides with the
	// given one under locale folding, returning (nil, nil) when absent.
	FindByNameFold(ctx context.Context, name string) (*Category, error)
}
