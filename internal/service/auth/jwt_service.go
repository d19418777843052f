package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// JWTService defines operations for managing JWT session tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT session token embedding the
	// user's ID. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID bson.ObjectID) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns the claims if the token is valid, or an error if
	// validation fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated contents of a session token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID bson.ObjectID

	// Standard registered JWT claims.
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
