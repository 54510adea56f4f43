package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-suite/pkg/ctxutil"
)

// SessionIDHeader identifies the learner workspace a request acts on.
const SessionIDHeader = "X-Session-Id"

// Session returns middleware that attaches a session ID to the request
// context. A missing or malformed header starts a new session; the ID in
// use is always echoed back so clients can keep it.
func Session() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := uuid.Parse(r.Header.Get(SessionIDHeader))
			if err != nil || id == uuid.Nil {
				id = uuid.New()
			}
			w.Header().Set(SessionIDHeader, id.String())
			next.ServeHTTP(w, r.WithContext(ctxutil.WithSessionID(r.Context(), id)))
		})
	}
}
