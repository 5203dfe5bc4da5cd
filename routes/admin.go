package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusmentor/booking-portal/controllers"
)

// SetupAdminRoutes configures admin authentication and the aggregate reads
// behind the admin dashboard.
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/api/admin")

	admin.Post("/auth", loginLimiter(), controllers.AdminLogin)
	admin.Post("/signout", controllers.AdminSignout)

	admin.Get("/bookings", controllers.AdminBookings)
	admin.Get("/mentors", controllers.AdminMentors)
	admin.Get("/slots", controllers.AdminSlots)
	admin.Get("/stats", controllers.AdminStats)
}
