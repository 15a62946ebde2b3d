package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hospital-staff-service/internal/domain"
	apperrors "github.com/spec-kit/hospital-staff-service/pkg/util"
)

const sessionKey = "auth_session"

// AuthMiddleware validates bearer tokens and loads the caller's session.
type AuthMiddleware struct {
	sessions *SessionManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(sessions *SessionManager) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Handle enforces authentication for protected routes. The token is presented
// explicitly by the client on every call; there is no ambient logged-in state.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := BearerToken(c)
	if token == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	session, err := m.sessions.Resolve(c.UserContext(), token)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return apperrors.NewUnauthorized("no active session")
		}
		return apperrors.MapError(err)
	}

	c.Locals(sessionKey, session)
	return c.Next()
}

// BearerToken extracts the bearer token from the Authorization header, or ""
// when none is present.
func BearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}
