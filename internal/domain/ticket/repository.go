package ticket

import "context"

// Repository defines the interface for ticket data operations.
type Repository interface {
	// Create creates a new ticket and assigns its id
	Create(ctx context.Context, t *Ticket) error

	// GetByID retrieves a ticket by id
	GetByID(ctx context.Context, id uint) (*Ticket, error)

	// Update persists changes to an existing ticket
	Update(ctx context.Context, t *Ticket) error

	// Delete removes a ticket by id
	Delete(ctx context.Context, id uint) error

	// List retrieves all tickets
	List(ctx context.Context) ([]*Ticket, error)

	// ExistsByCreatorID reports whether any ticket was created by the
	// given user. Used to block user deletion.
	ExistsByCreatorID(ctx context.Context, userID uint) (bool, error)
}
