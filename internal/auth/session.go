package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/spec-kit/hospital-staff-service/internal/domain"
)

// sessionTokenBytes sizes the random token; 32 bytes = 64 hex chars.
const sessionTokenBytes = 32

// ErrNoSession is returned when a token resolves to no live session.
var ErrNoSession = errors.New("auth: no active session")

// SessionStore persists token -> session mappings with expiry. Entries for
// different tokens are fully independent, so concurrent clients never see
// each other's identity.
type SessionStore interface {
	Save(ctx context.Context, token string, session domain.Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// SessionManager issues opaque tokens at login and resolves them back to the
// acting identity on every privileged call.
type SessionManager struct {
	store SessionStore
	ttl   time.Duration
}

// NewSessionManager builds a manager over the given store.
func NewSessionManager(store SessionStore, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionManager{store: store, ttl: ttl}
}

// Create stores the session under a fresh token and returns the token with
// its expiry. The token is the only handle to the session; it is returned to
// the client and never logged.
func (m *SessionManager) Create(ctx context.Context, session domain.Session) (string, time.Time, error) {
	token, err := generateToken()
	if err != nil {
		return "", time.Time{}, err
	}
	if err := m.store.Save(ctx, token, session, m.ttl); err != nil {
		return "", time.Time{}, err
	}
	return token, time.Now().Add(m.ttl), nil
}

// Resolve returns the session bound to the token, or ErrNoSession when the
// token is unknown or expired.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	return m.store.Get(ctx, token)
}

// Destroy removes the token's session. Destroying an absent token is not an
// error, so logout stays idempotent.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, token)
}

func generateToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
