package notification

import "context"

// Repository defines the interface for notification data operations.
type Repository interface {
	// Create creates a new notification and assigns its id
	Create(ctx context.Context, n *Notification) error

	// GetByID retrieves a notification by id
	GetByID(ctx context.Context, id uint) (*Notification, error)

	// Update persists changes to an existing notification
	Update(ctx context.Context, n *Notification) error

	// Delete removes a notification by id
	Delete(ctx context.Context, id uint) error

	// List retrieves all notifications
	List(ctx context.Context) ([]*Notification, error)

	// DeleteByRecipient bulk-deletes every notification addressed to the
	// given user, returning how many were removed. Deleting zero rows is
	// not an error.
	DeleteByRecipient(ctx context.Context, userID uint) (int64, error)
}
