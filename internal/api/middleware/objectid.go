package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"contacts-api/internal/api/shared"
)

// RequireObjectID returns middleware that checks the named path parameter
// is a well-formed document ID before any lookup is attempted. A malformed
// ID short-circuits the chain with 404: such an ID cannot possibly name a
// stored document, and reporting it the same way as a missing one avoids a
// separate error shape for the caller.
func RequireObjectID(paramName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, paramName)
			if _, err := bson.ObjectIDFromHex(raw); err != nil {
				shared.RespondWithError(w, r, http.StatusNotFound,
					fmt.Sprintf("%s is not a valid ID", raw))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
