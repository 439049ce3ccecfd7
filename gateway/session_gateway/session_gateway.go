package session_gateway

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"quill/config"
	"quill/domain"
	"quill/port/session_port"
)

// sessionClaims is the JWT payload of a session cookie.
type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// SessionGateway signs and verifies session tokens with the shared
// session secret (HMAC-SHA256).
type SessionGateway struct {
	secret []byte
	ttl    time.Duration
}

var _ session_port.SessionServicePort = (*SessionGateway)(nil)

func NewSessionGateway(cfg *config.Config) *SessionGateway {
	return &SessionGateway{
		secret: []byte(cfg.Auth.SessionSecret),
		ttl:    cfg.Auth.SessionTTL,
	}
}

func (g *SessionGateway) Issue(user *domain.User) (string, time.Time, error) {
	if len(g.secret) == 0 {
		return "", time.Time{}, errors.New("session secret is not configured")
	}

	now := time.Now()
	expiresAt := now.Add(g.ttl)

	claims := sessionClaims{
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiresAt, nil
}

func (g *SessionGateway) Validate(token string) (*domain.UserContext, error) {
	if len(g.secret) == 0 {
		return nil, domain.ErrUnauthorized
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	expiresAt := time.Time{}
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	userContext := &domain.UserContext{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		SessionID: claims.ID,
		ExpiresAt: expiresAt,
	}
	if !userContext.IsValid() {
		return nil, domain.ErrUnauthorized
	}
	return userContext, nil
}
