package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusmentor/booking-portal/auth"
)

// PageGuard applies the route-guard decision table to a page route: resolve
// the effective identity, redirect at most once, otherwise let the page
// render with the identity in locals.
func PageGuard(opts auth.PageOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := Identity(c)
		if target := auth.Decide(id, c.Path(), opts); target != "" {
			return c.Redirect(target, fiber.StatusFound)
		}
		return c.Next()
	}
}
