package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestInspector_Inspect(t *testing.T) {
	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	valid := Claims{
		Email: "ana@imob.com",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))

	tests := []struct {
		name    string
		secret  string
		token   string
		wantErr      error
		want         string
		wantVerified bool
	}{
		{
			name:    "Token vazio",
			token:   "  ",
			wantErr: ErrMissingToken,
		},
		{
			name:  "Sem segredo apenas lê as claims",
			token: sign(t, "qualquer", valid),
			want:  "ana@imob.com",
		},
		{
			name:    "Sem segredo ainda confere a expiração",
			token:   sign(t, "qualquer", expired),
			wantErr: ErrExpiredToken,
		},
		{
			name:         "Com segredo verifica a assinatura",
			secret:       "segredo",
			token:        sign(t, "segredo", valid),
			want:         "ana@imob.com",
			wantVerified: true,
		},
		{
			name:    "Assinatura de outro segredo",
			secret:  "segredo",
			token:   sign(t, "outro", valid),
			wantErr: ErrInvalidToken,
		},
		{
			name:    "Com segredo e expirado",
			secret:  "segredo",
			token:   sign(t, "segredo", expired),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "Texto que não é JWT",
			token:   "abc.def",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inspector := NewInspector(tt.secret)
			inspector.now = func() time.Time { return now }

			claims, err := inspector.Inspect(tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, claims.Actor())
			assert.True(t, claims.IsAdmin())
			assert.Equal(t, tt.wantVerified, claims.Verified)
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc", want: "abc", ok: true},
		{header: "  Bearer   abc  ", want: "abc", ok: true},
		{header: "Bearer ", ok: false},
		{header: "Basic abc", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContext(t *testing.T) {
	ctx := WithClaims(WithToken(context.Background(), "abc"), &Claims{Name: "Ana"})

	assert.Equal(t, "abc", TokenFromContext(ctx))
	claims, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "Ana", claims.Actor())

	assert.Empty(t, TokenFromContext(context.Background()))
	_, ok = ClaimsFromContext(context.Background())
	assert.False(t, ok)
}
