package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/campusmentor/booking-portal/middleware"
	"github.com/campusmentor/booking-portal/models"
	"github.com/campusmentor/booking-portal/sheets"
)

// GetMentorSlots lists a mentor's own slots, open and booked.
func GetMentorSlots(c *fiber.Ctx) error {
	mentorID := c.Query("mentorId")
	if mentorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "mentorId required",
		})
	}

	slots, err := sheets.Default.GetMentorSlots(c.UserContext(), mentorID)
	if err != nil {
		log.Printf("getMentorSlots failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	return c.JSON(fiber.Map{"slots": slots})
}

// GetMentorInfo resolves the mentor record for the signed-in user. Lookup
// is self-only: the requested email must match the session's email.
func GetMentorInfo(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email required",
		})
	}

	id := middleware.Identity(c)
	if email != id.Email {
		log.Printf("Mentor info email mismatch: %s vs %s", email, id.Email)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Can only request your own mentor info",
		})
	}

	mentor, err := sheets.Default.GetMentorByEmail(c.UserContext(), email)
	if err != nil {
		log.Printf("getMentorByEmail failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if mentor == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Mentor not found",
		})
	}
	return c.JSON(fiber.Map{"mentor": mentor})
}

// CancelMentorSlot cancels one of the signed-in mentor's slots. The mentor
// id is resolved from the session's email, never taken from the request.
func CancelMentorSlot(c *fiber.Ctx) error {
	type cancelInput struct {
		SlotID string `json:"slotId"`
	}

	input := new(cancelInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.SlotID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "slotId required",
		})
	}

	id := middleware.Identity(c)
	mentor, err := sheets.Default.GetMentorByEmail(c.UserContext(), id.Email)
	if err != nil {
		log.Printf("getMentorByEmail failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if mentor == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Mentor not found",
		})
	}

	if err := sheets.Default.CancelSlot(c.UserContext(), input.SlotID, mentor.MentorID); err != nil {
		log.Printf("cancelSlot failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
