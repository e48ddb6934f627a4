package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/estate-admin-api/internal/config"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	accountsmocks "github.com/vfg2006/estate-admin-api/internal/usecases/accounts/mocks"
	auditingmocks "github.com/vfg2006/estate-admin-api/internal/usecases/auditing/mocks"
	contentmocks "github.com/vfg2006/estate-admin-api/internal/usecases/content/mocks"
	contractingmocks "github.com/vfg2006/estate-admin-api/internal/usecases/contracting/mocks"
	dashboardmocks "github.com/vfg2006/estate-admin-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
	marketingmocks "github.com/vfg2006/estate-admin-api/internal/usecases/marketing/mocks"
	propertymocks "github.com/vfg2006/estate-admin-api/internal/usecases/property/mocks"
	servicingmocks "github.com/vfg2006/estate-admin-api/internal/usecases/servicing/mocks"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/log"
	"github.com/vfg2006/estate-admin-api/pkg/session"
	"go.uber.org/mock/gomock"
)

const testSecret = "segredo-de-teste"

type fixture struct {
	accounts *accountsmocks.MockAccountsService
	audit    *auditingmocks.MockAuditService
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithSecret(t, testSecret)
}

func newFixtureWithSecret(t *testing.T, secret string) *fixture {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	contentService := contentmocks.NewMockContentService(ctrl)
	contentService.EXPECT().Services().Return(nil)
	contentService.EXPECT().Sections().Return(nil)

	f := &fixture{
		accounts: accountsmocks.NewMockAccountsService(ctrl),
		audit:    auditingmocks.NewMockAuditService(ctrl),
	}

	cfg := &config.Config{
		Cors:    config.Cors{AllowedOrigins: []string{"http://localhost:3000"}},
		Listing: config.Listing{DefaultPageSize: 10},
	}

	services := Services{
		Dashboard:   dashboardmocks.NewMockDashboardService(ctrl),
		Property:    propertymocks.NewMockPropertyService(ctrl),
		Contracting: contractingmocks.NewMockContractingService(ctrl),
		Servicing:   servicingmocks.NewMockServicingService(ctrl),
		Content:     contentService,
		Marketing:   marketingmocks.NewMockMarketingService(ctrl),
		Accounts:    f.accounts,
		Audit:       f.audit,
	}

	f.handler = NewHandler(cfg, services, session.NewInspector(secret), nil)
	return f
}

func signToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()
	return signTokenWithKey(t, testSecret, role, expiresAt)
}

func signTokenWithKey(t *testing.T, key, role string, expiresAt time.Time) string {
	t.Helper()
	claims := session.Claims{
		Email: "ana@imob.com",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestNewHandler(t *testing.T) {
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name       string
		method     string
		url        string
		token      string
		setup      func(f *fixture)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Healthcheck é público",
			method:     http.MethodGet,
			url:        "/healthcheck",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Rota protegida sem token",
			method:     http.MethodGet,
			url:        "/v1/users",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrMissingToken,
		},
		{
			name:       "Token expirado",
			method:     http.MethodGet,
			url:        "/v1/users",
			token:      signToken(t, "admin", time.Now().Add(-time.Hour)),
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:       "Agente não acessa usuários",
			method:     http.MethodGet,
			url:        "/v1/users",
			token:      signToken(t, "agent", future),
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "Administrador lista usuários",
			method: http.MethodGet,
			url:    "/v1/users?role=agent",
			token:  signToken(t, "admin", future),
			setup: func(f *fixture) {
				f.accounts.EXPECT().ListUsers(gomock.Any(), "agent", gomock.Any()).
					Return(listing.Build([]domain.User{{ID: 1, Name: "Rui"}}, listing.Query{}, ""), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Administrador consulta auditoria",
			method: http.MethodGet,
			url:    "/v1/audit?resource=contract&limit=5",
			token:  signToken(t, "admin", future),
			setup: func(f *fixture) {
				f.audit.EXPECT().List(gomock.Any(), domain.AuditFilter{Resource: "contract", Limit: 5}).
					Return([]domain.AuditEntry{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Status de cron sem agendador configurado",
			method:     http.MethodGet,
			url:        "/v1/cron/status",
			token:      signToken(t, "admin", future),
			wantStatus: http.StatusOK,
		},
		{
			name:       "Rota inexistente",
			method:     http.MethodGet,
			url:        "/v1/nada",
			token:      signToken(t, "admin", future),
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrRouteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			f.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			if tt.wantCode != "" {
				var apiErr apiErrors.APIError
				require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, tt.wantCode, apiErr.Code)
			}
		})
	}
}

func TestNewHandler_UnverifiedAdminSession(t *testing.T) {
	forged := signTokenWithKey(t, "outra-chave", "admin", time.Now().Add(time.Hour))

	tests := []struct {
		name       string
		method     string
		url        string
		setup      func(f *fixture)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Auditoria recusa token sem assinatura verificada",
			method:     http.MethodGet,
			url:        "/v1/audit",
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:       "Status de cron recusa token sem assinatura verificada",
			method:     http.MethodGet,
			url:        "/v1/cron/status",
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:       "Execução manual de cron recusa token sem assinatura verificada",
			method:     http.MethodPost,
			url:        "/v1/cron/expired-contracts/run",
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "Usuários seguem para o backend, que valida o token",
			method: http.MethodGet,
			url:    "/v1/users",
			setup: func(f *fixture) {
				f.accounts.EXPECT().ListUsers(gomock.Any(), "", gomock.Any()).
					Return(listing.Build([]domain.User{}, listing.Query{}, ""), nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixtureWithSecret(t, "")
			if tt.setup != nil {
				tt.setup(f)
			}

			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+forged)
			rec := httptest.NewRecorder()

			f.handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var apiErr apiErrors.APIError
				require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, tt.wantCode, apiErr.Code)
			}
		})
	}
}
