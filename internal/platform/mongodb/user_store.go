package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"contacts-api/internal/domain"
	"contacts-api/internal/store"
)

// UserStore implements store.UserStore against the users collection.
type UserStore struct {
	col *mongo.Collection
}

var _ store.UserStore = (*UserStore)(nil)

// Create inserts the user and fills in the store-assigned ID.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// The only unique index on users is email.
			return store.ErrEmailExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}
	return nil
}

// GetByID retrieves a user by ID.
func (s *UserStore) GetByID(ctx context.Context, id bson.ObjectID) (*domain.User, error) {
	return s.getOne(ctx, bson.D{{Key: "_id", Value: id}})
}

// GetByEmail retrieves a user by email.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, bson.D{{Key: "email", Value: email}})
}

// GetByVerificationToken retrieves the user holding the given token.
// An empty token never matches: verified users all carry "" in that field,
// and matching it would let one verified user's lookup return another.
func (s *UserStore) GetByVerificationToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, store.ErrUserNotFound
	}
	return s.getOne(ctx, bson.D{{Key: "verification_token", Value: token}})
}

// UpdateFields applies a partial update to the user.
func (s *UserStore) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) error {
	res, err := s.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		setFields(fields, time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("update user: %w", wrapError(err))
	}
	if res.MatchedCount == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

func (s *UserStore) getOne(ctx context.Context, filter bson.D) (*domain.User, error) {
	user, err := findOne[domain.User](ctx, s.col, filter)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
