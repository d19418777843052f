package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"contacts-api/internal/store"
)

func TestWrapError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, wrapError(nil))
	})

	t.Run("no documents maps to not found", func(t *testing.T) {
		err := wrapError(mongo.ErrNoDocuments)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate key maps to duplicate", func(t *testing.T) {
		dup := mongo.WriteException{
			WriteErrors: []mongo.WriteError{{Code: 11000}},
		}
		err := wrapError(dup)
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("other errors pass through unchanged", func(t *testing.T) {
		orig := assert.AnError
		assert.Equal(t, orig, wrapError(orig))
	})
}

func TestSetFields(t *testing.T) {
	update := setFields(map[string]any{"token": "abc"}, "now")

	assert.Len(t, update, 1)
	assert.Equal(t, "$set", update[0].Key)

	set, ok := update[0].Value.(bson.D)
	assert.True(t, ok)

	// updated_at is always present alongside the requested fields.
	keys := make([]string, 0, len(set))
	for _, e := range set {
		keys = append(keys, e.Key)
	}
	assert.Contains(t, keys, "updated_at")
	assert.Contains(t, keys, "token")
}

func TestOwnedFilterScopesByOwner(t *testing.T) {
	owner := bson.NewObjectID()
	id := bson.NewObjectID()

	filter := ownedFilter(owner, id)

	assert.Equal(t, bson.D{
		{Key: "_id", Value: id},
		{Key: "owner", Value: owner},
	}, filter)
}
