package store

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"contacts-api/internal/domain"
)

// ContactStore defines the interface for contact data persistence. Every
// read and write is scoped by the owning user's ID; a contact belonging to
// a different user is indistinguishable from one that does not exist.
type ContactStore interface {
	// ListByOwner returns all contacts owned by the given user, newest
	// first. An owner with no contacts yields an empty slice, not an error.
	ListByOwner(ctx context.Context, owner bson.ObjectID) ([]*domain.Contact, error)

	// GetByID retrieves a single contact owned by the given user.
	// Returns ErrContactNotFound if it does not exist or is foreign-owned.
	GetByID(ctx context.Context, owner, id bson.ObjectID) (*domain.Contact, error)

	// Create saves a new contact and fills in the store-assigned ID.
	// Returns ErrInvalidEntity wrapping the domain validation error if the
	// contact data is invalid.
	Create(ctx context.Context, contact *domain.Contact) error

	// Update applies a partial update to a contact owned by the given user
	// and returns the updated document. Keys are document field names.
	// Returns ErrContactNotFound if it does not exist or is foreign-owned.
	Update(ctx context.Context, owner, id bson.ObjectID, fields map[string]any) (*domain.Contact, error)

	// Delete removes a contact owned by the given user.
	// Returns ErrContactNotFound if it does not exist or is foreign-owned.
	Delete(ctx context.Context, owner, id bson.ObjectID) error
}
