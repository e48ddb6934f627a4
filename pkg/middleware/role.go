package middleware

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/session"
)

// RoleMiddleware cria um middleware que restringe o acesso com base no papel da sessão
func RoleMiddleware(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := session.ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem sessão")
				apiErrors.WriteError(w, apiErrors.ErrMissingToken, messageSessionExpired, nil)
				return
			}

			for _, role := range allowedRoles {
				if strings.EqualFold(claims.Role, role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			logrus.Warningf("Acesso negado para %s, papel=%q", claims.Actor(), claims.Role)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(session.RoleAdmin)
}

// VerifiedAdminOnly protege as rotas servidas pelo estado local (auditoria e agendador),
// que o backend não reautoriza: além do papel admin, exige assinatura verificada.
func VerifiedAdminOnly() func(http.Handler) http.Handler {
	adminOnly := AdminOnly()
	return func(next http.Handler) http.Handler {
		guarded := adminOnly(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := session.ClaimsFromContext(r.Context()); ok && !claims.Verified {
				logrus.Warningf("Acesso negado para %s: token sem assinatura verificada", claims.Actor())
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Recurso disponível apenas com sessão verificada", nil)
				return
			}
			guarded.ServeHTTP(w, r)
		})
	}
}
