package comment

import "context"

// Repository defines the interface for comment data operations.
type Repository interface {
	// Create creates a new comment and assigns its id
	Create(ctx context.Context, c *Comment) error

	// GetByID retrieves a comment by id
	GetByID(ctx context.Context, id uint) (*Comment, error)

	// Delete removes a comment by id
	Delete(ctx context.Context, id uint) error

	// List retrieves all comments
	List(ctx context.Context) ([]*Comment, error)

	// ListByTicketID retrieves every comment attached to the given ticket
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)

	// DeleteByUserID bulk-deletes every comment authored by the given
	// user, returning how many were removed. Deleting zero rows is not an
	// error.
	DeleteByUserID(ctx context.Context, userID uint) (int64, error)

	// DeleteByTicketID bulk-deletes every comment attached to the given
	// ticket, returning how many were removed.
	DeleteByTicketID(ctx context.Context, ticketID uint) (int64, error)
}
