package httpapi

import (
	"context"
	"net/http"
)

// sessionCookie names the HTTP-only cookie holding the raw user id. Using
// the id itself as the session token is a documented weakness kept on
// purpose; see DESIGN.md.
const sessionCookie = "userId"

type ctxKey int

const userIDKey ctxKey = iota

func setSessionCookie(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    userID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// requesterID resolves the session cookie to a user id, or "" for an
// anonymous visitor.
func requesterID(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// requireSession gates mutation endpoints: requests without a session are
// rejected, others proceed with the user id stored in the request context.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := requesterID(r)
		if userID == "" {
			errorJSON(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionUserID returns the identity stored by requireSession.
func sessionUserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
