package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"contacts-api/internal/domain"
	"contacts-api/internal/store"
)

// MockContactStore implements store.ContactStore for testing.
type MockContactStore struct {
	// Function fields for customizable behavior
	ListByOwnerFn func(ctx context.Context, owner bson.ObjectID) ([]*domain.Contact, error)
	GetByIDFn     func(ctx context.Context, owner, id bson.ObjectID) (*domain.Contact, error)
	CreateFn      func(ctx context.Context, contact *domain.Contact) error
	UpdateFn      func(ctx context.Context, owner, id bson.ObjectID, fields map[string]any) (*domain.Contact, error)
	DeleteFn      func(ctx context.Context, owner, id bson.ObjectID) error

	// Data for the default implementation.
	Contacts map[bson.ObjectID]*domain.Contact
}

var _ store.ContactStore = (*MockContactStore)(nil)

// NewMockContactStore creates a new mock store with initialized defaults.
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{
		Contacts: make(map[bson.ObjectID]*domain.Contact),
	}
}

// ListByOwner implements the ContactStore interface.
func (m *MockContactStore) ListByOwner(ctx context.Context, owner bson.ObjectID) ([]*domain.Contact, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, owner)
	}

	result := []*domain.Contact{}
	for _, c := range m.Contacts {
		if c.Owner == owner {
			result = append(result, c)
		}
	}
	return result, nil
}

// GetByID implements the ContactStore interface.
func (m *MockContactStore) GetByID(ctx context.Context, owner, id bson.ObjectID) (*domain.Contact, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, owner, id)
	}

	c, exists := m.Contacts[id]
	if !exists || c.Owner != owner {
		return nil, store.ErrContactNotFound
	}
	return c, nil
}

// Create implements the ContactStore interface.
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}

	if contact.ID.IsZero() {
		contact.ID = bson.NewObjectID()
	}
	m.Contacts[contact.ID] = contact
	return nil
}

// Update implements the ContactStore interface.
func (m *MockContactStore) Update(ctx context.Context, owner, id bson.ObjectID, fields map[string]any) (*domain.Contact, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, owner, id, fields)
	}

	c, exists := m.Contacts[id]
	if !exists || c.Owner != owner {
		return nil, store.ErrContactNotFound
	}

	for k, v := range fields {
		switch k {
		case "name":
			c.Name, _ = v.(string)
		case "email":
			c.Email, _ = v.(string)
		case "phone":
			c.Phone, _ = v.(string)
		case "favorite":
			c.Favorite, _ = v.(bool)
		}
	}
	return c, nil
}

// Delete implements the ContactStore interface.
func (m *MockContactStore) Delete(ctx context.Context, owner, id bson.ObjectID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, owner, id)
	}

	c, exists := m.Contacts[id]
	if !exists || c.Owner != owner {
		return store.ErrContactNotFound
	}
	delete(m.Contacts, id)
	return nil
}
