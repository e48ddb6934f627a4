package middleware

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/log"
	"github.com/vfg2006/estate-admin-api/pkg/session"
)

const messageSessionExpired = "Sessão expirada, faça login novamente"

// TokenInspector lê as claims do token enviado pelo painel
type TokenInspector interface {
	Inspect(token string) (*session.Claims, error)
}

var publicPaths = map[string]bool{
	"/healthcheck": true,
}

// AuthMiddleware exige o token do painel em todas as rotas, exceto as públicas.
// O token segue no contexto para ser repassado ao backend.
func AuthMiddleware(inspector TokenInspector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := session.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, messageSessionExpired, nil)
				return
			}

			claims, err := inspector.Inspect(token)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token de sessão rejeitado")

				switch {
				case errors.Is(err, session.ErrExpiredToken):
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, messageSessionExpired, nil)
				case errors.Is(err, session.ErrMissingToken):
					apiErrors.WriteError(w, apiErrors.ErrMissingToken, messageSessionExpired, nil)
				default:
					apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de sessão inválido", nil)
				}
				return
			}

			logrus.WithField("user_email", claims.Email).Debug("Sessão autenticada")

			ctx := session.WithToken(r.Context(), token)
			ctx = session.WithClaims(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
