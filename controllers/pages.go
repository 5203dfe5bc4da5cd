package controllers

import (
	"fmt"
	"html"

	"github.com/gofiber/fiber/v2"

	"github.com/campusmentor/booking-portal/middleware"
)

// Minimal server-rendered pages. The interesting part of every page route
// is the guard in front of it; the markup is a plain shell the browser
// scripts hydrate against the /api surface.

const pageShell = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s</title></head>
<body>
<main id="app" data-page="%s">%s</main>
</body>
</html>`

func renderPage(c *fiber.Ctx, title, page, body string) error {
	c.Type("html", "utf-8")
	return c.SendString(fmt.Sprintf(pageShell, html.EscapeString(title), page, body))
}

func Home(c *fiber.Ctx) error {
	id := middleware.Identity(c)
	greeting := "Book an interview slot with a mentor."
	if id.IsAuthenticated() {
		greeting = "Welcome back, " + html.EscapeString(id.DisplayName()) + "."
	}
	return renderPage(c, "Mentor Booking", "home",
		"<h1>Mentor Booking</h1><p>"+greeting+"</p>"+
			`<p><a href="/auth/signin">Sign in</a></p>`)
}

func SignInPage(c *fiber.Ctx) error {
	callback := html.EscapeString(c.Query("callbackUrl"))
	return renderPage(c, "Sign in", "signin",
		`<h1>Sign in</h1>`+
			`<p><a href="/api/auth/google?callbackUrl=`+callback+`">Continue with Google (mentors)</a></p>`+
			`<form method="post" action="/api/auth/login">`+
			`<input name="rollNumber" placeholder="Roll number">`+
			`<input name="email" type="email" placeholder="Email">`+
			`<input type="hidden" name="callbackUrl" value="`+callback+`">`+
			`<button type="submit">Sign in as student</button>`+
			`</form>`)
}

func StudentDashboard(c *fiber.Ctx) error {
	return renderPage(c, "Student Dashboard", "student",
		"<h1>Open Slots</h1><p>Loading open slots…</p>")
}

func MentorDashboard(c *fiber.Ctx) error {
	return renderPage(c, "Mentor Dashboard", "mentor",
		"<h1>Your Slots</h1><p>Loading your slots…</p>")
}

// AdminRoot performs its own role-based dispatch; the guard exempts it.
func AdminRoot(c *fiber.Ctx) error {
	if middleware.Identity(c).IsAdmin() {
		return c.Redirect("/admin/dashboard", fiber.StatusFound)
	}
	return c.Redirect("/admin/signin", fiber.StatusFound)
}

func AdminSignInPage(c *fiber.Ctx) error {
	return renderPage(c, "Admin Sign in", "admin-signin",
		`<h1>Admin Sign in</h1>`+
			`<form method="post" action="/api/admin/auth">`+
			`<input name="adminId" placeholder="Admin ID">`+
			`<input name="password" type="password" placeholder="Password">`+
			`<button type="submit">Sign in</button>`+
			`</form>`)
}

func AdminDashboardPage(c *fiber.Ctx) error {
	return renderPage(c, "Admin Dashboard", "admin-dashboard",
		"<h1>Statistics</h1><p>Loading statistics…</p>")
}

func AdminMentorsPage(c *fiber.Ctx) error {
	return renderPage(c, "Mentors", "admin-mentors",
		"<h1>Mentors</h1><p>Loading mentors…</p>")
}

func AdminSlotsPage(c *fiber.Ctx) error {
	return renderPage(c, "Slots", "admin-slots",
		"<h1>All Slots</h1><p>Loading slots…</p>")
}

func PrivacyPolicyPage(c *fiber.Ctx) error {
	return renderPage(c, "Privacy Policy", "privacy",
		"<h1>Privacy Policy</h1><p>Booking data lives in the programme's records system and is used only to run mentor interviews.</p>")
}

func TermsPage(c *fiber.Ctx) error {
	return renderPage(c, "Terms and Conditions", "terms",
		"<h1>Terms and Conditions</h1><p>Slots are offered first-come-first-served and may be cancelled by the mentor.</p>")
}
