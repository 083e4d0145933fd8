package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"casepay-service/internal/pkg/constvars"
	"casepay-service/internal/pkg/exceptions"
	"casepay-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
)

const ContextStaffIDKey contextKey = "staff_id"

// BearerAuth validates the staff session token issued by the portal's
// identity service. API-key authenticated requests pass through.
func (m *Middlewares) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authenticated, _ := r.Context().Value(ContextAPIKeyAuth).(bool); authenticated {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get(constvars.HeaderAuthorization)
		rawToken := strings.TrimPrefix(header, "Bearer ")
		if rawToken == "" || rawToken == header {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidToken(fmt.Errorf("missing bearer token")))
			return
		}

		claims := new(jwt.RegisteredClaims)
		token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(m.InternalConfig.App.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidToken(err))
			return
		}

		ctx := context.WithValue(r.Context(), ContextStaffIDKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
