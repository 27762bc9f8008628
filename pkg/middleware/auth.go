package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"phreddit/pkg/session"
	"time"

	"go.uber.org/zap"
)

// Routes that mutate state need a session; these two are how you get one.
var openPaths = map[string]bool{
	"/api/users/register": true,
	"/api/users/login":    true,
}

func requiresAuth(r *http.Request) bool {
	if r.Method == http.MethodGet {
		return false
	}
	return !openPaths[r.URL.Path]
}

// Auth validates the bearer token and attaches the session to the request
// context. Reads pass through without one; mutations get a 401.
func Auth(logger *zap.SugaredLogger, sm session.SessionManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		sess, err := sm.Check(ctx, r)
		if err == nil && sess != nil {
			r = r.WithContext(context.WithValue(r.Context(), session.SessionKey, sess))
		} else if requiresAuth(r) {
			if err != nil {
				logger.Error(err.Error())
			}
			w.Header().Set("Content-type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			errorBody, _ := json.Marshal(map[string]string{"message": "unauthorized"})
			w.Write(errorBody)

			return
		}

		next.ServeHTTP(w, r)
	})
}
