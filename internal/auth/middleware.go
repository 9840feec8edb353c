package auth

import (
	"context"
	"errors"
	"log"
	"net/http"

	"cohera-backend/internal/models"
	"cohera-backend/internal/session"
)

type contextKey string

const sessionKey contextKey = "cohera_session"

// Middleware gates protected routes on a valid session. Every request
// resolves the cookie token against the store; there is no cached or
// client-supplied identity. Missing, unknown and expired tokens all get the
// same 401.
func Middleware(sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				writeMessage(w, http.StatusUnauthorized, "You are not logged in.")
				return
			}

			sess, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrSessionNotFound) {
					log.Printf("ERROR session lookup: %v", err)
				}
				writeMessage(w, http.StatusUnauthorized, "You are not logged in.")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), sess)))
		})
	}
}

// ContextWithSession attaches an authenticated identity to the context.
func ContextWithSession(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext returns the identity placed by Middleware.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*models.Session)
	return sess, ok
}

// Unauthenticated writes the gate's 401 response. Exposed for handlers that
// must refuse requests reaching them without an identity in context.
func Unauthenticated(w http.ResponseWriter) {
	writeMessage(w, http.StatusUnauthorized, "You are not logged in.")
}
