// Package auth models the authentication boundary of the back office.
// Identity itself lives in an external system; this package only verifies
// the static bearer tokens issued to admin users and tags requests with the
// resolved user name.
package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Wilsonthoma/Ecommerce-sub002/log"
	"github.com/Wilsonthoma/Ecommerce-sub002/rest/contextutils"
	m "github.com/Wilsonthoma/Ecommerce-sub002/rest/models"
)

// TokenAuthorizer authorizes requests against a static token to user map.
type TokenAuthorizer struct {
	tokens map[string]string
	logger log.Logger
}

func NewTokenAuthorizer(tokens map[string]string, logger log.Logger) *TokenAuthorizer {
	return &TokenAuthorizer{tokens: tokens, logger: logger}
}

// Middleware rejects requests without a recognized bearer token and stores
// the resolved user in the request context for downstream handlers.
func (a *TokenAuthorizer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		user, found := a.tokens[token]
		if token == "" || !found {
			a.logger.Debug("request rejected, missing or unknown token",
				"path", r.URL.Path)
			respondUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(contextutils.WithContextUser(r.Context(), user)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func respondUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(m.ModelError{Description: "unauthorized"})
}
