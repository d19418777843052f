package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"contacts-api/internal/api/shared"
	"contacts-api/internal/domain"
	"contacts-api/internal/service/auth"
	"contacts-api/internal/service/avatar"
	"contacts-api/internal/service/mail"
	"contacts-api/internal/store"
)

// maxAvatarUploadBytes bounds the multipart form kept in memory during an
// avatar upload; larger files spill to disk.
const maxAvatarUploadBytes = 10 << 20

// AuthHandler handles account lifecycle API requests: registration, email
// verification, login/logout, the current-user endpoint, and avatar upload.
type AuthHandler struct {
	userStore    store.UserStore
	jwtService   auth.JWTService
	hasher       auth.PasswordHasher
	verifier     auth.PasswordVerifier
	verification *mail.VerificationSender
	avatars      *avatar.Store
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	verification *mail.VerificationSender,
	avatars *avatar.Store,
) *AuthHandler {
	return &AuthHandler{
		userStore:    userStore,
		jwtService:   jwtService,
		hasher:       hasher,
		verifier:     verifier,
		verification: verification,
		avatars:      avatars,
	}
}

// Register handles POST /api/auth/register.
// A new user starts unverified, with a gravatar-derived avatar and a random
// one-time verification token that is emailed as a link.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	verificationToken := uuid.NewString()
	user, err := domain.NewUser(req.Email, hashed, avatar.URLFromEmail(req.Email), verificationToken)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data")
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email already in use")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	if err := h.verification.Send(r.Context(), user.Email, verificationToken); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to send verification email", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Email:        user.Email,
		Subscription: user.Subscription,
	})
}

// VerifyToken handles GET /api/auth/verify/{verificationToken}.
// The token is one-time: verification clears it, so a repeat call with the
// same token reports 404.
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "verificationToken")

	user, err := h.userStore.GetByVerificationToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Email not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to verify email", err)
		return
	}

	err = h.userStore.UpdateFields(r.Context(), user.ID, map[string]any{
		"verify":             true,
		"verification_token": "",
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to verify email", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Email verify success"})
}

// ResendVerifyEmail handles POST /api/auth/verify.
// Resends the existing verification link; the token is not rotated.
func (h *AuthHandler) ResendVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Email not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to resend email", err)
		return
	}

	if user.Verify {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email already verified")
		return
	}

	if err := h.verification.Send(r.Context(), user.Email, user.VerificationToken); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to send verification email", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Verification email sent"})
}

// Login handles POST /api/auth/login.
// The checks run in a fixed order: user existence, verification state, then
// password. An unverified account is reported as such even with a wrong
// password, matching the service's long-standing behavior. The issued token
// is persisted as the user's single valid session credential, replacing any
// previous one.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Email or password invalid")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	if !user.Verify {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Email not verified")
		return
	}

	if err := h.verifier.Compare(user.Password, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Email or password invalid")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	if err := h.userStore.UpdateFields(r.Context(), user.ID, map[string]any{"token": token}); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}

// GetCurrent handles GET /api/auth/current. Requires authentication.
func (h *AuthHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authorized")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CurrentUserResponse{
		Email:        user.Email,
		Subscription: user.Subscription,
	})
}

// Logout handles POST /api/auth/logout. Requires authentication.
// Clearing the stored token invalidates every outstanding credential.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authorized")
		return
	}

	if err := h.userStore.UpdateFields(r.Context(), user.ID, map[string]any{"token": ""}); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to log out", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Logout success"})
}

// UpdateAvatar handles PATCH /api/auth/avatars. Requires authentication.
// The uploaded file is stored under a name combining the user ID and the
// original filename, and the resulting path is persisted on the user.
func (h *AuthHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authorized")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Avatar file is required")
		return
	}
	defer file.Close()

	avatarURL, err := h.avatars.Save(user.ID, header.Filename, file)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to store avatar", err)
		return
	}

	err = h.userStore.UpdateFields(r.Context(), user.ID, map[string]any{"avatar_url": avatarURL})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to update avatar", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AvatarResponse{AvatarURL: avatarURL})
}
