package store

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"contacts-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// Handlers depend only on this interface, never on a concrete store.
type UserStore interface {
	// Create saves a new user to the store and fills in the store-assigned
	// ID. Returns ErrEmailExists if the email is already taken, or
	// ErrInvalidEntity wrapping the domain validation error if the user
	// data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByVerificationToken retrieves the user holding the given one-time
	// verification token. Returns ErrUserNotFound if no user carries it,
	// which is also the case once the token has been consumed.
	GetByVerificationToken(ctx context.Context, token string) (*domain.User, error)

	// UpdateFields applies a partial update to the user with the given ID.
	// Keys are document field names (e.g. "token", "verify", "avatar_url").
	// Returns ErrUserNotFound if the user does not exist.
	UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) error
}
