package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Common user validation errors.
var (
	ErrEmptyEmail             = errors.New("email cannot be empty")
	ErrEmptyPassword          = errors.New("password hash cannot be empty")
	ErrEmptyAvatarURL         = errors.New("avatar URL cannot be empty")
	ErrEmptyVerificationToken = errors.New("verification token is required for unverified users")
	ErrInvalidSubscription    = errors.New("invalid subscription tier")
)

// Subscription is the service tier a user is on.
type Subscription string

// Subscription tiers, in ascending order of capability.
const (
	SubscriptionStarter  Subscription = "starter"
	SubscriptionPro      Subscription = "pro"
	SubscriptionBusiness Subscription = "business"
)

// IsValid reports whether s is one of the known subscription tiers.
func (s Subscription) IsValid() bool {
	switch s {
	case SubscriptionStarter, SubscriptionPro, SubscriptionBusiness:
		return true
	}
	return false
}

// User represents a registered account.
//
// A user is in exactly one of three states: unverified (Verify false,
// VerificationToken set), verified and logged out (Verify true, Token
// empty), or verified and logged in (Verify true, Token holds the most
// recently issued session credential). Logout and re-login both replace
// Token, which invalidates every previously issued credential.
type User struct {
	ID                bson.ObjectID `bson:"_id,omitempty"       json:"id"`
	Email             string        `bson:"email"               json:"email"`
	Password          string        `bson:"password"            json:"-"` // bcrypt hash, never exposed
	Subscription      Subscription  `bson:"subscription"        json:"subscription"`
	Token             string        `bson:"token"               json:"-"`
	AvatarURL         string        `bson:"avatar_url"          json:"avatar_url"`
	Verify            bool          `bson:"verify"              json:"-"`
	VerificationToken string        `bson:"verification_token"  json:"-"`
	CreatedAt         time.Time     `bson:"created_at"          json:"created_at"`
	UpdatedAt         time.Time     `bson:"updated_at"          json:"updated_at"`
}

// NewUser creates an unverified User ready for persistence. The password
// must already be hashed; the caller is responsible for deriving the avatar
// URL and the verification token. The store assigns the ID on insert.
func NewUser(email, hashedPassword, avatarURL, verificationToken string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Email:             email,
		Password:          hashedPassword,
		Subscription:      SubscriptionStarter,
		AvatarURL:         avatarURL,
		VerificationToken: verificationToken,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User satisfies the account-state invariants.
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	if u.AvatarURL == "" {
		return ErrEmptyAvatarURL
	}
	if !u.Subscription.IsValid() {
		return ErrInvalidSubscription
	}
	if !u.Verify && u.VerificationToken == "" {
		return ErrEmptyVerificationToken
	}
	return nil
}
