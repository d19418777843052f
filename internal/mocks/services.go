package mocks

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"contacts-api/internal/service/auth"
	"contacts-api/internal/service/mail"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// Token is returned by GenerateToken when Err is nil.
	Token string
	Err   error

	// ValidateFn overrides ValidateToken when set; by default a token
	// equal to Token validates as UserID.
	ValidateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
	UserID     bson.ObjectID
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID bson.ObjectID) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, tokenString)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if tokenString != m.Token {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{
		UserID:    m.UserID,
		Subject:   m.UserID.Hex(),
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

// MockPasswordHasher implements auth.PasswordHasher and
// auth.PasswordVerifier for testing without bcrypt's cost.
type MockPasswordHasher struct {
	// ShouldSucceed controls Compare's outcome.
	ShouldSucceed bool
}

var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return auth.ErrWrongPassword
}

// MockMailer implements mail.Mailer, recording every message.
type MockMailer struct {
	Sent []mail.Message
	Err  error
}

var _ mail.Mailer = (*MockMailer)(nil)

// Send implements the Mailer interface.
func (m *MockMailer) Send(ctx context.Context, msg mail.Message) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}
