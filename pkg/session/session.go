// Package session guarda o token do painel no contexto da requisição e
// inspeciona suas claims antes de repassá-lo ao backend imobiliário.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

var (
	ErrMissingToken = errors.New("token de sessão ausente")
	ErrExpiredToken = errors.New("token de sessão expirado")
	ErrInvalidToken = errors.New("token de sessão inválido")
)

type contextKey string

const (
	tokenKey  contextKey = "session_token"
	claimsKey contextKey = "session_claims"
)

// Claims são os campos do token emitido pelo backend que o painel utiliza
type Claims struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims

	// Verified só é verdadeiro quando a assinatura foi conferida com AUTH_SECRET
	Verified bool `json:"-"`
}

// IsAdmin indica se o usuário da sessão é administrador
func (c *Claims) IsAdmin() bool {
	return c != nil && strings.EqualFold(c.Role, RoleAdmin)
}

// Actor identifica o usuário nos registros de auditoria
func (c *Claims) Actor() string {
	if c == nil {
		return ""
	}
	if c.Email != "" {
		return c.Email
	}
	if c.Name != "" {
		return c.Name
	}
	return c.Subject
}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	if ctx == nil {
		return nil, false
	}
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok && claims != nil
}

// BearerToken extrai o token do cabeçalho Authorization
func BearerToken(header string) (string, bool) {
	token, found := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// Inspector lê as claims do token. Com segredo configurado a assinatura é
// verificada (HS256); sem segredo apenas a expiração é conferida.
type Inspector struct {
	secret []byte
	now    func() time.Time
}

func NewInspector(secret string) *Inspector {
	return &Inspector{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (i *Inspector) Inspect(token string) (*Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}

	if len(i.secret) == 0 {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return nil, ErrInvalidToken
		}
		if claims.ExpiresAt != nil && !i.now().Before(claims.ExpiresAt.Time) {
			return nil, ErrExpiredToken
		}
		return claims, nil
	}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims.Verified = true
	return claims, nil
}
