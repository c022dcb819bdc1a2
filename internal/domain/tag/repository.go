package tag

import "context"

// Repository defines the interface for tag data operations.
type Repository interface {
	// Create creates a new tag and assigns its id
	Create(ctx context.Context, t *Tag) error

	// GetByID retrieves a tag by id
	GetByID(ctx context.Context, id uint) (*Tag, error)

	// Delete removes a tag by id
	Delete(ctx context.Context, id uint) error

	// List retrieves all tags
	List(ctx context.Context) ([]*Tag, error)

	// FindByNameFold looks up a tag whose name collides with the given one
	// under locale folding, returning (nil, nil) when absent.
	FindByNameFold(ctx context.Context, name string) (*Tag, error)
}
