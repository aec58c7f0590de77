// Package auth turns bearer tokens into request sessions.
//
// Tokens are HS256 JWTs carrying the user id in "sub" and the address in
// "email". The role is not part of the token: Open looks it up in the
// user_roles record store on every request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrMissingToken  = errors.New("authorization token required")
	ErrMissingSecret = errors.New("jwt secret is not configured")
)

// Claims are the token claims the service reads.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Session is the authenticated caller of one request.
type Session struct {
	UserID string
	Email  string
	Role   entities.Role

	opened time.Time
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == entities.RoleAdmin
}

// Close ends the session. It only logs today but callers must still
// defer it after a successful Open.
func (s *Session) Close() {
	if s == nil {
		return
	}
	slog.Debug("[auth][session] closed", "user_id", s.UserID, "duration_ms", time.Since(s.opened).Milliseconds())
}

// Sessions validates tokens and resolves roles.
type Sessions struct {
	secret []byte
	roles  interfaces.IRoleRepository
}

func NewSessions(secret string, roles interfaces.IRoleRepository) (*Sessions, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	return &Sessions{secret: []byte(secret), roles: roles}, nil
}

// Open validates the token and loads the caller role. Users without a
// stored role are plain users.
func (s *Sessions) Open(ctx context.Context, token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}
	claims, err := s.validate(token)
	if err != nil {
		return nil, err
	}

	role, err := s.roles.GetRole(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to load user role: %w", err)
	}
	if role == "" {
		role = entities.RoleUser
	}
	return &Session{UserID: claims.Subject, Email: claims.Email, Role: role, opened: time.Now()}, nil
}

// Issue signs a token for the given user. Used by the CLI and tests; the
// identity provider issues the production tokens.
func (s *Sessions) Issue(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *Sessions) validate(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}
