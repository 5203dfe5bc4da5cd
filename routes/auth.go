package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/campusmentor/booking-portal/controllers"
)

// SetupAuthRoutes configures the sign-in, sign-out and session endpoints.
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	// Credential sign-in is rate limited per IP: it drives a remote
	// directory read on every attempt.
	authGroup.Post("/login", loginLimiter(), controllers.Login)
	authGroup.Post("/logout", controllers.Logout)
	authGroup.Get("/session", controllers.GetSession)

	authGroup.Get("/google", controllers.GoogleLogin)
	authGroup.Get("/google/callback", controllers.GoogleCallback)
}

func loginLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many attempts, please try again later.",
			})
		},
	})
}
