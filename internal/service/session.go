package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/domain"
)

// sessionClaims are the JWT claims carried by a session token. The
// RegisteredClaims ID field holds the session id checked against the
// active-session registry.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// SessionService issues and validates opaque session tokens. A token is a
// signed JWT whose jti identifies an entry in an in-memory TTL registry;
// ending a session removes the entry, so a well-signed token for an ended
// session is still rejected.
type SessionService struct {
	secret   []byte
	ttl      time.Duration
	sessions *ttlcache.Cache[string, int64]
}

// NewSessionService creates a SessionService issuing tokens valid for ttl.
func NewSessionService(secret string, ttl time.Duration) *SessionService {
	// Reads must not extend a session: the registry entry and the token's
	// exp claim expire together.
	cache := ttlcache.New(
		ttlcache.WithTTL[string, int64](ttl),
		ttlcache.WithDisableTouchOnHit[string, int64](),
	)
	go cache.Start()

	return &SessionService{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: cache,
	}
}

// Start opens a session for the given user and returns its token. Callers
// must have verified credentials first.
func (s *SessionService) Start(userID int64) (string, error) {
	sessionID := uuid.NewString()
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	s.sessions.Set(sessionID, userID, ttlcache.DefaultTTL)
	return signed, nil
}

// CurrentUser returns the user id bound to the token, or domain.ErrNoSession
// if the token is invalid, expired, or its session has been ended.
func (s *SessionService) CurrentUser(token string) (int64, error) {
	claims, err := s.parse(token)
	if err != nil {
		return 0, domain.ErrNoSession
	}

	item := s.sessions.Get(claims.ID)
	if item == nil {
		return 0, domain.ErrNoSession
	}
	return item.Value(), nil
}

// End invalidates the session bound to the token. Ending a session that is
// not active fails with domain.ErrNoSession.
func (s *SessionService) End(token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return domain.ErrNoSession
	}

	if !s.sessions.Has(claims.ID) {
		return domain.ErrNoSession
	}
	s.sessions.Delete(claims.ID)
	return nil
}

// Close stops the registry's expiry loop.
func (s *SessionService) Close() {
	s.sessions.Stop()
}

func (s *SessionService) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, domain.ErrNoSession
	}
	return claims, nil
}
