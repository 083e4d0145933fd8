package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"casepay-service/internal/app/config"
	"casepay-service/internal/pkg/constvars"
)

func newTestMiddlewares() *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App: config.App{
				SuperadminAPIKey: "super-secret-key",
				JWTSecret:        "jwt-signing-secret",
			},
		},
	}
}

func signedToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAPIKeyAuth(t *testing.T) {
	middlewares := newTestMiddlewares()

	t.Run("valid key marks the request authenticated", func(t *testing.T) {
		var authenticated bool
		handler := middlewares.APIKeyAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authenticated, _ = r.Context().Value(ContextAPIKeyAuth).(bool)
		}))

		request := httptest.NewRequest(http.MethodGet, "/payments", nil)
		request.Header.Set(constvars.HeaderXAPIKey, "super-secret-key")
		handler.ServeHTTP(httptest.NewRecorder(), request)

		assert.True(t, authenticated)
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		handler := middlewares.APIKeyAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

		request := httptest.NewRequest(http.MethodGet, "/payments", nil)
		request.Header.Set(constvars.HeaderXAPIKey, "guessed-key")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing key falls through", func(t *testing.T) {
		var reached bool
		handler := middlewares.APIKeyAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			authenticated, _ := r.Context().Value(ContextAPIKeyAuth).(bool)
			assert.False(t, authenticated)
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/payments", nil))
		assert.True(t, reached)
	})
}

func TestBearerAuth(t *testing.T) {
	middlewares := newTestMiddlewares()

	t.Run("valid token puts the staff id in context", func(t *testing.T) {
		var staffID string
		handler := middlewares.BearerAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			staffID, _ = r.Context().Value(ContextStaffIDKey).(string)
		}))

		request := httptest.NewRequest(http.MethodGet, "/payments", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+signedToken(t, "jwt-signing-secret", "staff-42"))
		handler.ServeHTTP(httptest.NewRecorder(), request)

		assert.Equal(t, "staff-42", staffID)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		handler := middlewares.BearerAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

		request := httptest.NewRequest(http.MethodGet, "/payments", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+signedToken(t, "other-secret", "staff-42"))
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing token is rejected", func(t *testing.T) {
		handler := middlewares.BearerAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/payments", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("api-key authenticated requests skip bearer validation", func(t *testing.T) {
		var reached bool
		chain := middlewares.APIKeyAuth(middlewares.BearerAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		})))

		request := httptest.NewRequest(http.MethodGet, "/payments", nil)
		request.Header.Set(constvars.HeaderXAPIKey, "super-secret-key")
		chain.ServeHTTP(httptest.NewRecorder(), request)

		assert.True(t, reached)
	})
}
