package handler

import (
	"crypto/subtle"
	"net/http"

	"recipebook/internal/logger"
)

// CachePurger invalidates cached CMS content. The recipe client
// satisfies this.
type CachePurger interface {
	Purge()
}

// HandleRevalidate drops the recipe cache so CMS content edits become
// visible immediately. Guarded by a shared secret.
func HandleRevalidate(secret string, purger CachePurger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		supplied := r.URL.Query().Get("secret")
		if secret == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
			log.Warn("Revalidation rejected: bad secret")
			respondError(w, http.StatusUnauthorized, ErrMsgInvalidSecret)
			return
		}

		purger.Purge()
		log.Info("Recipe cache purged")
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Revalidation triggered"})
	}
}
