package server

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "vocabstudy_session"

var ErrInvalidSession = errors.New("invalid or expired session")

type sessionClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// SessionManager signs and verifies HS256 session tokens that carry a user ID.
type SessionManager struct {
	signingKey []byte
	lifetime   time.Duration
	now        func() time.Time
}

func NewSessionManager(secret string, lifetime time.Duration) (*SessionManager, error) {
	if len(secret) < 32 {
		return nil, errors.New("session secret must be at least 32 characters")
	}
	return &SessionManager{
		signingKey: []byte(secret),
		lifetime:   lifetime,
		now:        time.Now,
	}, nil
}

// Issue returns a signed token for userID and its expiry.
func (m *SessionManager) Issue(userID int64) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.lifetime)
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token.SignedString > %w", err)
	}
	return token, expiresAt, nil
}

// Verify returns the user ID of a valid token, or ErrInvalidSession.
func (m *SessionManager) Verify(tokenString string) (int64, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(token *jwt.Token) (any, error) {
			return m.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if claims.UserID <= 0 {
		return 0, ErrInvalidSession
	}
	return claims.UserID, nil
}
