package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/log"
	"github.com/vfg2006/estate-admin-api/pkg/session"
)

type fakeInspector struct {
	claims *session.Claims
	err    error
}

func (f fakeInspector) Inspect(token string) (*session.Claims, error) {
	return f.claims, f.err
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		inspector  fakeInspector
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Healthcheck dispensa token",
			path:       "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Sem token",
			path:       "/v1/realestates",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrMissingToken,
		},
		{
			name:       "Cabeçalho sem Bearer",
			path:       "/v1/realestates",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrMissingToken,
		},
		{
			name:       "Token expirado",
			path:       "/v1/realestates",
			header:     "Bearer abc",
			inspector:  fakeInspector{err: session.ErrExpiredToken},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:       "Token inválido",
			path:       "/v1/realestates",
			header:     "Bearer abc",
			inspector:  fakeInspector{err: session.ErrInvalidToken},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Token válido",
			path:       "/v1/realestates",
			header:     "Bearer abc",
			inspector:  fakeInspector{claims: &session.Claims{Email: "ana@imob.com", Role: "admin"}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotToken string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotToken = session.TokenFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.inspector)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
				assert.Empty(t, gotToken)
			}
			if tt.inspector.claims != nil {
				assert.Equal(t, "abc", gotToken)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		claims     *session.Claims
		wantStatus int
	}{
		{name: "Administrador", claims: &session.Claims{Role: "Admin"}, wantStatus: http.StatusNoContent},
		{name: "Agente", claims: &session.Claims{Role: "agent"}, wantStatus: http.StatusForbidden},
		{name: "Sem sessão", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
			if tt.claims != nil {
				req = req.WithContext(session.WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestVerifiedAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		claims     *session.Claims
		wantStatus int
	}{
		{name: "Administrador verificado", claims: &session.Claims{Role: "admin", Verified: true}, wantStatus: http.StatusNoContent},
		{name: "Administrador sem assinatura verificada", claims: &session.Claims{Role: "admin"}, wantStatus: http.StatusForbidden},
		{name: "Agente verificado", claims: &session.Claims{Role: "agent", Verified: true}, wantStatus: http.StatusForbidden},
		{name: "Sem sessão", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/audit", nil)
			if tt.claims != nil {
				req = req.WithContext(session.WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			VerifiedAdminOnly()(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("Preflight de origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/contracts", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida não recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/contracts", nil)
		req.Header.Set("Origin", "http://evil.test")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingMiddleware_PropagatesRequestID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/contracts", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/contracts", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
