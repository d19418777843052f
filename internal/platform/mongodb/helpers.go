package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"contacts-api/internal/store"
)

// wrapError translates driver errors into the store's sentinel errors so
// callers never depend on mongo error types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return err
}

// findOne decodes a single document matching filter into T.
func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.D) (*T, error) {
	var result T
	if err := col.FindOne(ctx, filter).Decode(&result); err != nil {
		return nil, wrapError(err)
	}
	return &result, nil
}

// setFields builds a $set update from a field map, always bumping
// updated_at so partial updates keep the document timestamps honest.
func setFields(fields map[string]any, now any) bson.D {
	set := bson.D{{Key: "updated_at", Value: now}}
	for k, v := range fields {
		set = append(set, bson.E{Key: k, Value: v})
	}
	return bson.D{{Key: "$set", Value: set}}
}
