package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrEmptyContactName is returned when a contact is created without a name.
var ErrEmptyContactName = errors.New("contact name cannot be empty")

// ErrEmptyOwner is returned when a contact has no owning user.
var ErrEmptyOwner = errors.New("contact owner cannot be empty")

// Contact is a single phonebook entry. Every contact belongs to exactly one
// user; all lookups are scoped by Owner.
type Contact struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name"          json:"name"`
	Email     string        `bson:"email"         json:"email"`
	Phone     string        `bson:"phone"         json:"phone"`
	Favorite  bool          `bson:"favorite"      json:"favorite"`
	Owner     bson.ObjectID `bson:"owner"         json:"-"`
	CreatedAt time.Time     `bson:"created_at"    json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updated_at"`
}

// NewContact creates a Contact owned by the given user. The store assigns
// the ID on insert.
func NewContact(owner bson.ObjectID, name, email, phone string, favorite bool) (*Contact, error) {
	now := time.Now().UTC()
	contact := &Contact{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Favorite:  favorite,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}

	return contact, nil
}

// Validate checks that the Contact has the fields persistence requires.
func (c *Contact) Validate() error {
	if c.Name == "" {
		return ErrEmptyContactName
	}
	if c.Owner.IsZero() {
		return ErrEmptyOwner
	}
	return nil
}
