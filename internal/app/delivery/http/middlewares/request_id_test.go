package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alphagov/pay-selfservice-sub005/internal/pkg/constvars"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}

	var seenRequestID string
	var seenIsClient bool
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		seenIsClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Client supplied request ID is propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/selfservice/v1/users/me", nil)
		req.Header.Set(constvars.HeaderRequestID, "client-id-123")

		rr := httptest.NewRecorder()
		middlewares.RequestID(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, "client-id-123", seenRequestID, "context should carry the client request ID")
		assert.True(t, seenIsClient)
		assert.Equal(t, "client-id-123", rr.Header().Get(constvars.HeaderRequestID), "response should echo the request ID")
	})

	t.Run("Missing request ID is generated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/selfservice/v1/users/me", nil)

		rr := httptest.NewRecorder()
		middlewares.RequestID(testHandler).ServeHTTP(rr, req)

		assert.NotEmpty(t, seenRequestID, "context should carry a generated request ID")
		assert.False(t, seenIsClient)
		assert.Equal(t, seenRequestID, rr.Header().Get(constvars.HeaderRequestID))
	})
}
