package auth

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource is the single place the console reads its upstream credential
// from. Clear is invoked when the backend answers 401 so the next call fails
// fast instead of retrying a dead token.
type TokenSource interface {
	Token() (string, bool)
	Clear()
}

// StaticTokenSource wraps a token handed in at startup (env/config).
type StaticTokenSource struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenSource builds a source seeded with the given token.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token returns the credential and whether one is present.
func (s *StaticTokenSource) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Clear drops the credential.
func (s *StaticTokenSource) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

type sessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken creates a signed JWT for a console admin session.
func GenerateSessionToken(secret, userID, role string, ttl time.Duration) (string, error) {
	claims := &sessionClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Session identifies the authenticated console admin.
type Session struct {
	UserID string
	Role   string
}

// ParseSessionToken validates the token and returns the session identity.
func ParseSessionToken(secret, tokenString string) (Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return Session{}, err
	}

	if claims, ok := token.Claims.(*sessionClaims); ok && token.Valid {
		return Session{UserID: claims.UserID, Role: claims.Role}, nil
	}

	return Session{}, jwt.ErrTokenInvalidClaims
}
