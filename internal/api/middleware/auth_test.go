package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"contacts-api/internal/domain"
	"contacts-api/internal/mocks"
	"contacts-api/internal/service/auth"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, *mocks.MockUserStore, *domain.User) {
	t.Helper()

	user := &domain.User{
		ID:     bson.NewObjectID(),
		Email:  "test@example.com",
		Verify: true,
		Token:  "current-token",
	}
	userStore := mocks.NewMockUserStore()
	userStore.Users[user.Email] = user

	jwt := &mocks.MockJWTService{Token: "current-token", UserID: user.ID}
	return NewAuthMiddleware(jwt, userStore), userStore, user
}

// okHandler records whether the chain reached it and which user it saw.
type okHandler struct {
	called bool
	user   *domain.User
}

func (h *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.user, _ = GetUser(r)
	w.WriteHeader(http.StatusOK)
}

func doAuth(t *testing.T, m *AuthMiddleware, header string) (*httptest.ResponseRecorder, *okHandler) {
	t.Helper()

	next := &okHandler{}
	req := httptest.NewRequest(http.MethodGet, "/api/auth/current", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, req)
	return rec, next
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid token attaches user to context", func(t *testing.T) {
		m, _, user := newAuthFixture(t)

		rec, next := doAuth(t, m, "Bearer current-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, next.called)
		require.NotNil(t, next.user)
		assert.Equal(t, user.ID, next.user.ID)
	})

	t.Run("missing header", func(t *testing.T) {
		m, _, _ := newAuthFixture(t)

		rec, next := doAuth(t, m, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, next.called)
	})

	headerFormats := []struct {
		name   string
		header string
	}{
		{name: "missing scheme", header: "current-token"},
		{name: "wrong scheme", header: "Basic current-token"},
		{name: "extra parts", header: "Bearer current-token extra"},
	}
	for _, tt := range headerFormats {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newAuthFixture(t)

			rec, next := doAuth(t, m, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, next.called)
		})
	}

	t.Run("invalid token", func(t *testing.T) {
		m, _, _ := newAuthFixture(t)

		rec, next := doAuth(t, m, "Bearer forged-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, next.called)
	})

	t.Run("expired token", func(t *testing.T) {
		m, _, _ := newAuthFixture(t)
		jwt := &mocks.MockJWTService{
			ValidateFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
				return nil, auth.ErrExpiredToken
			},
		}
		m.jwtService = jwt

		rec, next := doAuth(t, m, "Bearer current-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, next.called)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		m, userStore, user := newAuthFixture(t)
		delete(userStore.Users, user.Email)

		rec, next := doAuth(t, m, "Bearer current-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, next.called)
	})

	t.Run("token issued before logout is rejected", func(t *testing.T) {
		m, _, user := newAuthFixture(t)
		user.Token = ""

		rec, next := doAuth(t, m, "Bearer current-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, next.called)
	})

	t.Run("token superseded by a newer login is rejected", func(t *testing.T) {
		m, _, user := newAuthFixture(t)
		user.Token = "newer-token"

		// The old token still carries a valid signature; only the stored
		// session comparison rejects it.
		jwt := &mocks.MockJWTService{
			ValidateFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
				return &auth.Claims{UserID: user.ID, Subject: user.ID.Hex()}, nil
			},
		}
		m.jwtService = jwt

		rec, next := doAuth(t, m, "Bearer current-token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, next.called)
	})
}
