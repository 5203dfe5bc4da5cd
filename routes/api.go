package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusmentor/booking-portal/auth"
	"github.com/campusmentor/booking-portal/controllers"
	"github.com/campusmentor/booking-portal/middleware"
)

// SetupAPIRoutes configures the session-protected slot, booking and mentor
// endpoints.
func SetupAPIRoutes(app *fiber.App) {
	slots := app.Group("/api/slots", middleware.Protected())
	slots.Get("/", controllers.GetOpenSlots)
	slots.Post("/", middleware.RequireRole(auth.KindMentor, "Only mentors can create slots"), controllers.CreateSlot)

	bookings := app.Group("/api/bookings", middleware.Protected())
	bookings.Get("/", controllers.GetBookings)
	bookings.Post("/", controllers.BookSlot)
	bookings.Get("/:id", controllers.GetBookingByID)

	mentor := app.Group("/api/mentor", middleware.Protected())
	mentor.Get("/slots", controllers.GetMentorSlots)
	mentor.Get("/info", controllers.GetMentorInfo)
	mentor.Post("/slots/cancel", middleware.RequireRole(auth.KindMentor, "Only mentors can cancel slots"), controllers.CancelMentorSlot)
}
