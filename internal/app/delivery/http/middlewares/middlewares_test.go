package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brm-service/internal/app/config"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares(maxRequests int) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{App: config.App{MaxRequests: maxRequests}})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares(0)

	var seen string
	handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Client Request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-123", seen)
		assert.Equal(t, "client-123", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generated Request ID", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	middlewares := newTestMiddlewares(0)
	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"`+constvars.ErrClientSomethingWrongWithApplication+`"}`, rr.Body.String())
}

func TestBodyBuffer(t *testing.T) {
	middlewares := newTestMiddlewares(0)
	handler := middlewares.BodyBuffer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := r.Context().Value(constvars.CONTEXT_RAW_BODY).([]byte)
		require.True(t, ok)
		again, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, raw, again)
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Name":"Acme"}`)))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestRateLimit(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Disabled", func(t *testing.T) {
		handler := newTestMiddlewares(0).RateLimit()(ok)
		for i := 0; i < 5; i++ {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("Limited", func(t *testing.T) {
		handler := newTestMiddlewares(1).RateLimit()(ok)

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Contains(t, second.Body.String(), constvars.ErrClientTooManyRequests)
	})
}
