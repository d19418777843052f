package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"contacts-api/internal/api/shared"
	"contacts-api/internal/domain"
	"contacts-api/internal/mocks"
	"contacts-api/internal/service/avatar"
	"contacts-api/internal/service/mail"
)

// testAuthDeps bundles an AuthHandler with the mocks behind it.
type testAuthDeps struct {
	handler   *AuthHandler
	userStore *mocks.MockUserStore
	jwt       *mocks.MockJWTService
	mailer    *mocks.MockMailer
}

func newTestAuthHandler(t *testing.T) *testAuthDeps {
	t.Helper()

	userStore := mocks.NewMockUserStore()
	jwt := &mocks.MockJWTService{Token: "test-token"}
	hasher := &mocks.MockPasswordHasher{ShouldSucceed: true}
	mailer := &mocks.MockMailer{}
	sender := mail.NewVerificationSender(mailer, "http://localhost:8080")

	avatars, err := avatar.NewStore(t.TempDir())
	require.NoError(t, err)

	return &testAuthDeps{
		handler:   NewAuthHandler(userStore, jwt, hasher, hasher, sender, avatars),
		userStore: userStore,
		jwt:       jwt,
		mailer:    mailer,
	}
}

// seedUser adds a user to the mock store in the given lifecycle state.
func seedUser(t *testing.T, deps *testAuthDeps, email string, verified bool) *domain.User {
	t.Helper()

	verificationToken := "verify-" + email
	if verified {
		verificationToken = ""
	}
	user := &domain.User{
		ID:                bson.NewObjectID(),
		Email:             email,
		Password:          "hashed:password123",
		Subscription:      domain.SubscriptionStarter,
		AvatarURL:         avatar.URLFromEmail(email),
		Verify:            verified,
		VerificationToken: verificationToken,
	}
	deps.userStore.Users[email] = user
	return user
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func withUser(r *http.Request, user *domain.User) *http.Request {
	ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
	return r.WithContext(ctx)
}

func TestRegister(t *testing.T) {
	t.Run("valid registration", func(t *testing.T) {
		deps := newTestAuthHandler(t)

		rec := postJSON(t, deps.handler.Register, "/api/auth/register", map[string]string{
			"email":    "test@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp RegisterResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "test@example.com", resp.Email)
		assert.Equal(t, domain.SubscriptionStarter, resp.Subscription)

		// The stored user is unverified with a hashed password, gravatar
		// avatar and a non-empty verification token.
		user := deps.userStore.Users["test@example.com"]
		require.NotNil(t, user)
		assert.False(t, user.Verify)
		assert.NotEmpty(t, user.VerificationToken)
		assert.Equal(t, "hashed:password123", user.Password)
		assert.Equal(t, avatar.URLFromEmail("test@example.com"), user.AvatarURL)

		// The verification email carries a link embedding the token.
		require.Len(t, deps.mailer.Sent, 1)
		assert.Equal(t, "test@example.com", deps.mailer.Sent[0].To)
		assert.Contains(t, deps.mailer.Sent[0].HTML,
			"http://localhost:8080/api/auth/verify/"+user.VerificationToken)
	})

	t.Run("duplicate email returns 409 and leaves first record intact", func(t *testing.T) {
		deps := newTestAuthHandler(t)

		rec := postJSON(t, deps.handler.Register, "/api/auth/register", map[string]string{
			"email":    "dup@example.com",
			"password": "first-password",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		original := *deps.userStore.Users["dup@example.com"]

		rec = postJSON(t, deps.handler.Register, "/api/auth/register", map[string]string{
			"email":    "dup@example.com",
			"password": "second-password",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, original, *deps.userStore.Users["dup@example.com"])
	})

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{name: "missing email", payload: map[string]string{"password": "password123"}},
		{name: "missing password", payload: map[string]string{"email": "a@b.co"}},
		{name: "malformed email", payload: map[string]string{"email": "nope", "password": "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestAuthHandler(t)

			rec := postJSON(t, deps.handler.Register, "/api/auth/register", tt.payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, deps.userStore.Users, "validation failures must not reach the store")
		})
	}
}

func TestVerifyToken(t *testing.T) {
	verifyRequest := func(handler http.HandlerFunc, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/verify/"+token, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("verificationToken", token)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		rec := httptest.NewRecorder()
		handler(rec, req)
		return rec
	}

	t.Run("verification flips state and consumes token", func(t *testing.T) {
		deps := newTestAuthHandler(t)
		user := seedUser(t, deps, "test@example.com", false)
		token := user.VerificationToken

		rec := verifyRequest(deps.handler.VerifyToken, token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, user.Verify)
		assert.Empty(t, user.VerificationToken)

		// The token is one-time: a second call reports 404.
		rec = verifyRequest(deps.handler.VerifyToken, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown token returns 404", func(t *testing.T) {
		deps := newTestAuthHandler(t)

		rec := verifyRequest(deps.handler.VerifyToken, "no-such-token")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestResendVerifyEmail(t *testing.T) {
	t.Run("resends existing token", func(t *testing.T) {
		deps := newTestAuthHandler(t)
		user := seedUser(t, deps, "test@example.com", false)

		rec := postJSON(t, deps.handler.ResendVerifyEmail, "/api/auth/verify", map[string]string{
			"email": "test@example.com",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, deps.mailer.Sent, 1)
		assert.Contains(t, deps.mailer.Sent[0].HTML, user.VerificationToken)
	})

	t.Run("unknown email returns 404", func(t *testing.T) {
		deps := newTestAuthHandler(t)

		rec := postJSON(t, deps.handler.ResendVerifyEmail, "/api/auth/verify", map[string]string{
			"email": "nobody@example.com",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("already verified returns 400", func(t *testing.T) {
		deps := newTestAuthHandler(t)
		seedUser(t, deps, "done@example.com", true)

		rec := postJSON(t, deps.handler.ResendVerifyEmail, "/api/auth/verify", map[string]string{
			"email": "done@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, deps.mailer.Sent)
	})
}

func TestLogin(t *testing.T) {
	t.Run("successful login persists token", func(t *testing.T) {
		deps := newTestAuthHandler(t)
		user := seedUser(t, deps, "test@example.com", true)

		rec := postJSON(t, deps.handler.Login, "/api/auth/login", map[string]string{
			"email":    "test@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "test-token", resp.Token)
		assert.Equal(t, "test-token", user.Token)
	})

	t.Run("second login replaces the stored token", func(t *testing.T) {
		deps := newTestAuthHandler(t)
		user := seedUser(t, deps, "test@example.com", true)
		user.Token = "previous-token"

		rec := postJSON(t, deps.handler.Login, "/api/auth/login", map[string]string{
			"email":    "test@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "test-token", user.Token,
			"a later login must invalidate earlier credentials")
	})

	t.Run("unknown user returns 401", func(t *testing.T) {
		deps := newTestAuthHandler(t)

		rec := postJSON(t, deps.handler.Login, "/api/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unverified user cannot log in even with correct password", func(t *testing.T) {
		deps := newTestAuthHandler(t)
		seedUser(t, deps, "new@example.com", false)

		rec := postJSON(t, deps.handler.Login, "/api/auth/login", map[string]string{
			"email":    "new@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Email not verified", resp.Error)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		deps := newTestAuthHandler(t)
		seedUser(t, deps, "test@example.com", true)

		// Flip the verifier into rejection mode through a fresh handler.
		hasher := &mocks.MockPasswordHasher{ShouldSucceed: false}
		sender := mail.NewVerificationSender(deps.mailer, "http://localhost:8080")
		avatars, err := avatar.NewStore(t.TempDir())
		require.NoError(t, err)
		handler := NewAuthHandler(deps.userStore, deps.jwt, hasher, hasher, sender, avatars)

		rec := postJSON(t, handler.Login, "/api/auth/login", map[string]string{
			"email":    "test@example.com",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogoutClearsToken(t *testing.T) {
	deps := newTestAuthHandler(t)
	user := seedUser(t, deps, "test@example.com", true)
	user.Token = "live-token"

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil), user)
	rec := httptest.NewRecorder()
	deps.handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, user.Token)
}

func TestGetCurrent(t *testing.T) {
	deps := newTestAuthHandler(t)
	user := seedUser(t, deps, "test@example.com", true)
	user.Subscription = domain.SubscriptionPro

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/auth/current", nil), user)
	rec := httptest.NewRecorder()
	deps.handler.GetCurrent(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CurrentUserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "test@example.com", resp.Email)
	assert.Equal(t, domain.SubscriptionPro, resp.Subscription)
}

func TestUpdateAvatar(t *testing.T) {
	deps := newTestAuthHandler(t)
	user := seedUser(t, deps, "test@example.com", true)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("avatar", "selfie.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPatch, "/api/auth/avatars", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = withUser(req, user)

	rec := httptest.NewRecorder()
	deps.handler.UpdateAvatar(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp AvatarResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	// The new path names both the user and the original file, and the user
	// record reflects it exactly.
	assert.Contains(t, resp.AvatarURL, user.ID.Hex())
	assert.Contains(t, resp.AvatarURL, "selfie.png")
	assert.Equal(t, resp.AvatarURL, user.AvatarURL)
}

func TestUpdateAvatarMissingFile(t *testing.T) {
	deps := newTestAuthHandler(t)
	user := seedUser(t, deps, "test@example.com", true)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("unrelated", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPatch, "/api/auth/avatars", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = withUser(req, user)

	rec := httptest.NewRecorder()
	deps.handler.UpdateAvatar(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
