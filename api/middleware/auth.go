package middleware

import (
	"net/http"
	"strings"

	"github.com/autolane/auctionflow-backend/api/responses"
	pkgauth "github.com/autolane/auctionflow-backend/pkg/auth"
	"github.com/autolane/auctionflow-backend/pkg/config"
	pkgerrors "github.com/autolane/auctionflow-backend/pkg/errors"
	"github.com/autolane/auctionflow-backend/pkg/logger"
)

// Auth validates an operator bearer token and seeds the request context with
// the operator's name.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseOperatorToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := WithOperator(r.Context(), claims.Operator)
			if logg != nil {
				ctx = logg.WithOperator(ctx, claims.Operator)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
