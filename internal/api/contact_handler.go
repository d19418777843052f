package api

import (
	"errors"
	"net/http"

	"contacts-api/internal/api/shared"
	"contacts-api/internal/domain"
	"contacts-api/internal/store"
)

// ContactHandler handles contact CRUD requests. Every operation requires
// authentication and is scoped to the authenticated user's contacts; a
// contact owned by someone else is reported as not found.
type ContactHandler struct {
	contactStore store.ContactStore
}

// NewContactHandler creates a new ContactHandler with the given store.
func NewContactHandler(contactStore store.ContactStore) *ContactHandler {
	return &ContactHandler{contactStore: contactStore}
}

// List handles GET /api/contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authorized")
		return
	}

	contacts, err := h.contactStore.ListByOwner(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list contacts", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contacts)
}

// GetByID handles GET /api/contacts/{contactID}.
func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authorized")
		return
	}

	contactID, err := getPathObjectID(r, "contactID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Contact not found")
		return
	}

	contact, err := h.contactStore.GetByID(r.Context(), user.ID, contactID)
	if err != nil {
		h.respondStoreError(w, r, err, "Failed to get contact")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contact)
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authorized")
		return
	}

	var req ContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contact, err := domain.NewContact(user.ID, req.Name, req.Email, req.Phone, req.Favorite)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid contact data")
		return
	}

	if err := h.contactStore.Create(r.Context(), contact); err != nil {
		h.respondStoreError(w, r, err, "Failed to create contact")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, contact)
}

// Update handles PUT /api/contacts/{contactID}. The full contact schema
// applies; every mutable field is replaced.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authorized")
		return
	}

	contactID, err := getPathObjectID(r, "contactID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Contact not found")
		return
	}

	var req ContactRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contact, err := h.contactStore.Update(r.Context(), user.ID, contactID, map[string]any{
		"name":     req.Name,
		"email":    req.Email,
		"phone":    req.Phone,
		"favorite": req.Favorite,
	})
	if err != nil {
		h.respondStoreError(w, r, err, "Failed to update contact")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contact)
}

// UpdateFavorite handles PATCH /api/contacts/{contactID}/favorite.
// Only the favorite flag changes; all other fields are left untouched.
func (h *ContactHandler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authorized")
		return
	}

	contactID, err := getPathObjectID(r, "contactID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Contact not found")
		return
	}

	var req FavoriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	contact, err := h.contactStore.Update(r.Context(), user.ID, contactID, map[string]any{
		"favorite": *req.Favorite,
	})
	if err != nil {
		h.respondStoreError(w, r, err, "Failed to update contact")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, contact)
}

// Delete handles DELETE /api/contacts/{contactID}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authorized")
		return
	}

	contactID, err := getPathObjectID(r, "contactID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Contact not found")
		return
	}

	if err := h.contactStore.Delete(r.Context(), user.ID, contactID); err != nil {
		h.respondStoreError(w, r, err, "Failed to delete contact")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Contact deleted"})
}

// respondStoreError writes the response for a failed store call, mapping
// not-found sentinels to 404 and everything else to a logged 500.
func (h *ContactHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if errors.Is(err, store.ErrContactNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Contact not found")
		return
	}

	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
