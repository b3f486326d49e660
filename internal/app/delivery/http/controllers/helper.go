package controllers

import (
	"net/http"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
)

// currentUser returns the session user placed on the context by the
// authentication middleware, or nil on unauthenticated routes.
func currentUser(r *http.Request) *responses.User {
	user, _ := r.Context().Value(constvars.CONTEXT_USER_KEY).(*responses.User)
	return user
}
