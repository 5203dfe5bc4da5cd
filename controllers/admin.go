package controllers

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusmentor/booking-portal/config"
	"github.com/campusmentor/booking-portal/middleware"
	"github.com/campusmentor/booking-portal/models"
	"github.com/campusmentor/booking-portal/sheets"
)

// AdminLogin validates the configured admin credentials and sets the admin
// cookie pair on success.
func AdminLogin(c *fiber.Ctx) error {
	type adminInput struct {
		AdminID  string `json:"adminId" form:"adminId"`
		Password string `json:"password" form:"password"`
	}

	input := new(adminInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Authentication failed",
		})
	}

	adminID := config.AdminID()
	password := config.AdminPassword()
	passwordHash := config.AdminPasswordHash()
	if adminID == "" || (password == "" && passwordHash == "") {
		log.Println("Admin credentials not configured in environment variables")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Admin authentication not configured",
		})
	}

	idMatch := subtle.ConstantTimeCompare([]byte(input.AdminID), []byte(adminID)) == 1
	if !idMatch || !adminPasswordMatches(input.Password, password, passwordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid admin credentials",
		})
	}

	middleware.SetAdminCookies(c, adminID)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Authentication successful",
	})
}

func adminPasswordMatches(given, plain, hash string) bool {
	if hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(plain)) == 1
}

// AdminSignout clears the admin cookie pair.
func AdminSignout(c *fiber.Ctx) error {
	middleware.ClearAdminCookies(c)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Signed out",
	})
}

// The admin dashboard reads below each proxy one remote aggregate list.
// They deliberately use the {success, data} envelope the dashboard expects.

func AdminBookings(c *fiber.Ctx) error {
	bookings, err := sheets.Default.GetAllBookings(c.UserContext())
	if err != nil {
		return adminReadError(c, "bookings", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return c.JSON(fiber.Map{"success": true, "data": bookings})
}

func AdminMentors(c *fiber.Ctx) error {
	mentors, err := sheets.Default.GetAllMentors(c.UserContext())
	if err != nil {
		return adminReadError(c, "mentors", err)
	}
	if mentors == nil {
		mentors = []models.Mentor{}
	}
	return c.JSON(fiber.Map{"success": true, "data": mentors})
}

func AdminSlots(c *fiber.Ctx) error {
	slots, err := sheets.Default.GetAllSlots(c.UserContext())
	if err != nil {
		return adminReadError(c, "slots", err)
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	return c.JSON(fiber.Map{"success": true, "data": slots})
}

func AdminStats(c *fiber.Ctx) error {
	stats, err := sheets.Default.GetAdminStats(c.UserContext())
	if err != nil {
		return adminReadError(c, "stats", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

func adminReadError(c *fiber.Ctx, what string, err error) error {
	log.Printf("Admin %s read failed: %v", what, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
