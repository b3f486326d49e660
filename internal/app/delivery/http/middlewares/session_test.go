package middlewares

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alphagov/pay-selfservice-sub005/internal/app/config"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/dto/responses"
	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/exceptions"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSessionUsecase struct {
	user *responses.User
	err  error
}

func (s *stubSessionUsecase) ResolveUser(ctx context.Context, cookieValue string) (*responses.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubSessionUsecase) CreateSession(ctx context.Context, user *responses.User) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubSessionUsecase) DestroySession(ctx context.Context, cookieValue string) error {
	return nil
}

func TestAuthenticate(t *testing.T) {
	internalConfig := &config.InternalConfig{
		Session: config.Session{CookieName: "selfservice_session"},
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := r.Context().Value(constvars.CONTEXT_USER_KEY).(*responses.User)
		assert.True(t, ok, "user should be set in context")
		assert.Equal(t, "user-abc", user.ExternalID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid session cookie", func(t *testing.T) {
		middlewares := &Middlewares{
			SessionUsecase: &stubSessionUsecase{user: &responses.User{ExternalID: "user-abc"}},
			InternalConfig: internalConfig,
			Log:            zap.NewNop(),
		}

		req := httptest.NewRequest("GET", "/selfservice/v1/users/me", nil)
		req.AddCookie(&http.Cookie{Name: "selfservice_session", Value: "signed-token"})

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing session cookie", func(t *testing.T) {
		middlewares := &Middlewares{
			SessionUsecase: &stubSessionUsecase{},
			InternalConfig: internalConfig,
			Log:            zap.NewNop(),
		}

		req := httptest.NewRequest("GET", "/selfservice/v1/users/me", nil)

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 when the cookie is absent")
	})

	t.Run("Session not found", func(t *testing.T) {
		middlewares := &Middlewares{
			SessionUsecase: &stubSessionUsecase{err: exceptions.ErrSessionNotFound(nil)},
			InternalConfig: internalConfig,
			Log:            zap.NewNop(),
		}

		req := httptest.NewRequest("GET", "/selfservice/v1/users/me", nil)
		req.AddCookie(&http.Cookie{Name: "selfservice_session", Value: "stale-token"})

		rr := httptest.NewRecorder()
		middlewares.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
