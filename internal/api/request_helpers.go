package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"contacts-api/internal/api/shared"
	"contacts-api/internal/domain"
)

// getUserFromContext extracts the authenticated user placed in the request
// context by the authentication middleware. The second return value is
// false when no user is present, which means the route was miswired —
// authenticated handlers must sit behind the auth middleware.
func getUserFromContext(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// getPathObjectID extracts a document ID from the URL path parameters.
// Routes using it sit behind the RequireObjectID middleware, so a parse
// failure here is unexpected; it is still handled rather than assumed away.
func getPathObjectID(r *http.Request, paramName string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, paramName))
	if err != nil {
		return bson.ObjectID{}, domain.ErrInvalidID
	}
	return id, nil
}

// decodeAndValidate decodes the JSON body into req and applies its schema.
// On failure it writes the 400 response and reports false; the handler
// simply returns.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}
	return true
}
