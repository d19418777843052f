// Package mongodb implements the store interfaces against MongoDB using
// the official mongo-go-driver v2. Documents are serialized through the
// bson tags on the domain structs; collection names and indexes are
// managed centrally in ensureIndexes.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names.
const (
	colUsers    = "users"
	colContacts = "contacts"
)

// Store wraps a MongoDB database and implements store.UserStore and
// store.ContactStore through its typed sub-stores.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to MongoDB, verifies the connection, and ensures the
// indexes the application relies on (notably the unique email index that
// backs duplicate-registration detection).
func NewStore(ctx context.Context, uri, dbName string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect failed: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("mongodb: ping failed: %w", err)
	}

	s := &Store{client: client, db: client.Database(dbName)}

	if err := s.ensureIndexes(connectCtx); err != nil {
		slog.Warn("mongodb: ensure indexes failed", "error", err)
	}

	return s, nil
}

// Close disconnects from MongoDB.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Users returns the user store backed by this connection.
func (s *Store) Users() *UserStore {
	return &UserStore{col: s.col(colUsers)}
}

// Contacts returns the contact store backed by this connection.
func (s *Store) Contacts() *ContactStore {
	return &ContactStore{col: s.col(colContacts)}
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// ensureIndexes creates all necessary indexes.
func (s *Store) ensureIndexes(ctx context.Context) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		{colUsers, bson.D{{Key: "email", Value: 1}}, true},
		{colUsers, bson.D{{Key: "verification_token", Value: 1}}, false},
		{colContacts, bson.D{{Key: "owner", Value: 1}}, false},
		{colContacts, bson.D{{Key: "owner", Value: 1}, {Key: "favorite", Value: 1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := s.col(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
	}

	return nil
}
