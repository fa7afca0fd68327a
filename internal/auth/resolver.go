package auth

import (
	"context"
	"net/http"
	"strconv"

	"github.com/reddital/reddital-be/internal/models"
	"github.com/reddital/reddital-be/internal/services"
)

// AuthenticationHeader carries the client's authentication key. In the
// current scheme the key is literally the user's numeric id as a
// string. That scheme has no expiry and no signature and must be
// replaced with a signed token before any real deployment; it is kept
// here for compatibility with existing clients.
const AuthenticationHeader = "Authentication"

// userKey is the context key for the resolved credential.
type contextKey string

const userKey = contextKey("currentUser")

// Resolver turns an opaque authentication key into a user identity.
type Resolver struct {
	users services.UserServiceProvider
}

// NewResolver creates a Resolver backed by the given user service.
func NewResolver(users services.UserServiceProvider) *Resolver {
	return &Resolver{users: users}
}

// Authenticate resolves a client-supplied key to the credential it
// belongs to. Any malformed or stale key yields ok=false; this is the
// permissive edge of the trust boundary, so no failure escapes.
func (r *Resolver) Authenticate(key string) (models.Credential, bool) {
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return models.Credential{}, false
	}

	cred, err := r.users.FindUserByID(id)
	if err != nil {
		return models.Credential{}, false
	}
	return cred, true
}

// Middleware rejects requests without a resolvable authentication key
// and passes the resolved credential down via the request context.
func (r *Resolver) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			cred, ok := r.Authenticate(req.Header.Get(AuthenticationHeader))
			if !ok {
				http.Error(w, "invalid authentication key", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(req.Context(), userKey, cred)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// CurrentUser returns the credential the middleware resolved for this
// request.
func CurrentUser(ctx context.Context) (models.Credential, bool) {
	cred, ok := ctx.Value(userKey).(models.Credential)
	return cred, ok
}
