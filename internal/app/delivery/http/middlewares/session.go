package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/utils"
)

// Authenticate gates a route behind the session cookie. The resolved
// user is stashed on the request context for the controllers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.InternalConfig.Session.CookieName)
		if err != nil || cookie.Value == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthenticated(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		user, err := m.SessionUsecase.ResolveUser(ctx, cookie.Value)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx = context.WithValue(r.Context(), constvars.CONTEXT_USER_KEY, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
