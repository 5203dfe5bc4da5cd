package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusmentor/booking-portal/auth"
	"github.com/campusmentor/booking-portal/controllers"
	"github.com/campusmentor/booking-portal/middleware"
)

// SetupPageRoutes configures the guarded page routes. Each page declares
// its guard options; the decision table lives in the auth package.
func SetupPageRoutes(app *fiber.App) {
	app.Get("/", middleware.PageGuard(auth.PageOptions{RedirectToRoleDashboard: true}), controllers.Home)
	app.Get("/auth/signin", middleware.PageGuard(auth.PageOptions{}), controllers.SignInPage)

	app.Get("/student", middleware.PageGuard(auth.PageOptions{RequiredRole: auth.KindStudent}), controllers.StudentDashboard)
	app.Get("/mentor", middleware.PageGuard(auth.PageOptions{RequiredRole: auth.KindMentor}), controllers.MentorDashboard)

	app.Get("/admin", middleware.PageGuard(auth.PageOptions{}), controllers.AdminRoot)
	app.Get("/admin/signin", middleware.PageGuard(auth.PageOptions{}), controllers.AdminSignInPage)
	app.Get("/admin/dashboard", middleware.PageGuard(auth.PageOptions{}), controllers.AdminDashboardPage)
	app.Get("/admin/mentors", middleware.PageGuard(auth.PageOptions{}), controllers.AdminMentorsPage)
	app.Get("/admin/slots", middleware.PageGuard(auth.PageOptions{}), controllers.AdminSlotsPage)

	app.Get("/privacypolicy", middleware.PageGuard(auth.PageOptions{DisableRedirects: true}), controllers.PrivacyPolicyPage)
	app.Get("/termsandconditions", middleware.PageGuard(auth.PageOptions{DisableRedirects: true}), controllers.TermsPage)
}
