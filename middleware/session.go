package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/campusmentor/booking-portal/auth"
	"github.com/campusmentor/booking-portal/config"
)

// Cookie names. The session cookie holds a signed JWT; the admin cookies are
// a plain flag, the server-side rendition of the original admin marker.
const (
	SessionCookie = "session_token"
	AdminCookie   = "admin_authenticated"
	AdminIDCookie = "admin_id"
)

const identityKey = "identity"

// Protected requires a valid session cookie and stores the resolved
// identity in the request locals.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.SessionSecret()),
		TokenLookup:  "cookie:" + SessionCookie,
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Unauthorized",
				})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token claims",
				})
			}
			c.Locals(identityKey, auth.FromSessionClaims(claims))
			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

// RequireRole rejects sessions whose role differs from kind. Runs after
// Protected.
func RequireRole(kind auth.Kind, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Identity(c).Kind != kind {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": message,
			})
		}
		return c.Next()
	}
}

// Identity returns the identity resolved for this request, resolving from
// cookies when no middleware has done so yet.
func Identity(c *fiber.Ctx) auth.Identity {
	if id, ok := c.Locals(identityKey).(auth.Identity); ok {
		return id
	}
	id := ResolveIdentity(c)
	c.Locals(identityKey, id)
	return id
}

// ResolveIdentity computes the effective identity from the two credential
// sources. The admin cookie short-circuits the session; a malformed or
// unreadable source is treated as absent and resolution continues.
func ResolveIdentity(c *fiber.Ctx) auth.Identity {
	if c.Cookies(AdminCookie) == "true" {
		return auth.Admin(c.Cookies(AdminIDCookie))
	}
	tokenString := c.Cookies(SessionCookie)
	if tokenString == "" {
		return auth.Anonymous()
	}
	id, err := auth.ParseSessionToken(tokenString, config.SessionSecret())
	if err != nil {
		return auth.Anonymous()
	}
	return id
}

// SetSessionCookie installs the signed session token: httpOnly, lax,
// secure in production, 30-day expiry.
func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(auth.SessionTTL),
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	expireCookie(c, SessionCookie, true)
}

// SetAdminCookies marks the browser as admin-authenticated. The flag is not
// cryptographically verified, matching the original marker semantics; it
// only ever grants access to aggregate dashboards.
func SetAdminCookies(c *fiber.Ctx, adminID string) {
	expires := time.Now().Add(auth.SessionTTL)
	c.Cookie(&fiber.Cookie{
		Name:     AdminCookie,
		Value:    "true",
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     AdminIDCookie,
		Value:    adminID,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   config.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearAdminCookies(c *fiber.Ctx) {
	expireCookie(c, AdminCookie, true)
	expireCookie(c, AdminIDCookie, true)
}

func expireCookie(c *fiber.Ctx, name string, httpOnly bool) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: httpOnly,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
