package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"contacts-api/internal/domain"
	"contacts-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn                 func(ctx context.Context, user *domain.User) error
	GetByIDFn                func(ctx context.Context, id bson.ObjectID) (*domain.User, error)
	GetByEmailFn             func(ctx context.Context, email string) (*domain.User, error)
	GetByVerificationTokenFn func(ctx context.Context, token string) (*domain.User, error)
	UpdateFieldsFn           func(ctx context.Context, id bson.ObjectID, fields map[string]any) error

	// Data for the default implementation, keyed by email.
	Users map[string]*domain.User
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}

	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	m.Users[user.Email] = user
	return nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByVerificationToken implements the UserStore interface.
func (m *MockUserStore) GetByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	if m.GetByVerificationTokenFn != nil {
		return m.GetByVerificationTokenFn(ctx, token)
	}

	if token == "" {
		return nil, store.ErrUserNotFound
	}
	for _, user := range m.Users {
		if user.VerificationToken == token {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// UpdateFields implements the UserStore interface. The default
// implementation understands the fields the handlers actually write.
func (m *MockUserStore) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) error {
	if m.UpdateFieldsFn != nil {
		return m.UpdateFieldsFn(ctx, id, fields)
	}

	for _, user := range m.Users {
		if user.ID != id {
			continue
		}
		for k, v := range fields {
			switch k {
			case "token":
				user.Token, _ = v.(string)
			case "verify":
				user.Verify, _ = v.(bool)
			case "verification_token":
				user.VerificationToken, _ = v.(string)
			case "avatar_url":
				user.AvatarURL, _ = v.(string)
			}
		}
		return nil
	}
	return store.ErrUserNotFound
}
