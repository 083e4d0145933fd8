package middlewares

import (
	"context"
	"net/http"

	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/exceptions"
	"casepay-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const ContextAPIKeyAuth contextKey = "api_key_auth"

// APIKeyAuth grants superadmin access when the configured key is
// presented. Requests without the header fall through to bearer auth.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if apiKey != m.InternalConfig.App.SuperadminAPIKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), ContextAPIKeyAuth, true)

		m.Log.Info("API key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
