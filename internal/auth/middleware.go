package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const sessionContextKey = "consoleSession"

// SessionCookie is the cookie the browser pages carry the session in. API
// clients use the Authorization header instead.
const SessionCookie = "console_session"

// Middleware validates console session tokens and loads the admin identity
// into request locals. The token is read from the Authorization header or,
// for browser page loads, from the session cookie.
func Middleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := ""
		if authHeader := c.Get("Authorization"); authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
			}
			tokenString = parts[1]
		} else {
			tokenString = c.Cookies(SessionCookie)
		}
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing credentials")
		}

		session, err := ParseSessionToken(secret, tokenString)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(sessionContextKey, session)
		return c.Next()
	}
}

// CurrentSession extracts the authenticated admin from request locals.
func CurrentSession(c *fiber.Ctx) (Session, bool) {
	value := c.Locals(sessionContextKey)
	if value == nil {
		return Session{}, false
	}

	if session, ok := value.(Session); ok {
		return session, true
	}

	return Session{}, false
}
