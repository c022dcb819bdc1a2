package user

import "context"

// Repository defines the interface for user data operations.
//
// GetBy* methods return a not found error when no record matches;
// FindBy* methods return (nil, nil) so callers can branch on absence
// without unwrapping errors (duplicate checks rely on this).
type Repository interface {
	// Create creates a new user and assigns its id
	Create(ctx context.Context, u *User) error

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername retrieves a user by exact username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// FindByUsernameFold looks up a user whose username collides with the
	// given one under locale folding
	FindByUsernameFold(ctx context.Context, username string) (*User, error)

	// FindByEmail looks up a user by exact email match
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindByConfirmationToken looks up a pending account by its token
	FindByConfirmationToken(ctx context.Context, token string) (*User, error)

	// Update persists changes to an existing user
	Update(ctx context.Context, u *User) error

	// Delete removes a user by id
	Delete(ctx context.Context, id uint) error

	// List retrieves all users
	List(ctx context.Context) ([]*User, error)
}
