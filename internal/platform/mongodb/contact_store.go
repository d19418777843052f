package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"contacts-api/internal/domain"
	"contacts-api/internal/store"
)

// ContactStore implements store.ContactStore against the contacts
// collection. Ownership enforcement happens in the query filters: every
// operation matches on both _id and owner, so a foreign-owned contact is
// reported as not found.
type ContactStore struct {
	col *mongo.Collection
}

var _ store.ContactStore = (*ContactStore)(nil)

// ListByOwner returns the owner's contacts, newest first.
func (s *ContactStore) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]*domain.Contact, error) {
	filter := bson.D{{Key: "owner", Value: owner}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", wrapError(err))
	}
	defer cursor.Close(ctx)

	contacts := []*domain.Contact{}
	for cursor.Next(ctx) {
		var c domain.Contact
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode contact: %w", err)
		}
		contacts = append(contacts, &c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

// GetByID retrieves a single owned contact.
func (s *ContactStore) GetByID(ctx context.Context, owner, id bson.ObjectID) (*domain.Contact, error) {
	contact, err := findOne[domain.Contact](ctx, s.col, ownedFilter(owner, id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrContactNotFound
		}
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return contact, nil
}

// Create inserts the contact and fills in the store-assigned ID.
func (s *ContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if err := contact.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	res, err := s.col.InsertOne(ctx, contact)
	if err != nil {
		return fmt.Errorf("insert contact: %w", wrapError(err))
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		contact.ID = id
	}
	return nil
}

// Update applies a partial update to an owned contact and returns the
// updated document.
func (s *ContactStore) Update(ctx context.Context, owner, id bson.ObjectID, fields map[string]any) (*domain.Contact, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Contact
	err := s.col.FindOneAndUpdate(ctx,
		ownedFilter(owner, id),
		setFields(fields, time.Now().UTC()),
		opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrContactNotFound
		}
		return nil, fmt.Errorf("update contact: %w", wrapError(err))
	}

	return &updated, nil
}

// Delete removes an owned contact.
func (s *ContactStore) Delete(ctx context.Context, owner, id bson.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, ownedFilter(owner, id))
	if err != nil {
		return fmt.Errorf("delete contact: %w", wrapError(err))
	}
	if res.DeletedCount == 0 {
		return store.ErrContactNotFound
	}
	return nil
}

func ownedFilter(owner, id bson.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: owner},
	}
}
