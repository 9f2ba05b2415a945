package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/trinhquocthinh/foodhub/pkg/logger"
)

const (
	sessionCookieName = "fh_session"
	sessionHeaderName = "X-FH-Session"
)

// SessionContext resolves the device session id from the header or
// cookie, minting one when absent. The session id is the cart's storage
// key; echoing it in the header and cookie lets both browser and
// non-browser clients keep it.
func SessionContext(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := sessionIDFromRequest(r)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(sessionHeaderName, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionIDFromRequest(r *http.Request) string {
	if header := r.Header.Get(sessionHeaderName); header != "" {
		if _, err := uuid.Parse(header); err == nil {
			return header
		}
	}
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if _, err := uuid.Parse(cookie.Value); err == nil {
			return cookie.Value
		}
	}
	return ""
}
