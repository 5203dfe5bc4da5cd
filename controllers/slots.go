package controllers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/campusmentor/booking-portal/middleware"
	"github.com/campusmentor/booking-portal/models"
	"github.com/campusmentor/booking-portal/sheets"
	"github.com/campusmentor/booking-portal/utils"
)

// GetOpenSlots lists the slots students can book.
func GetOpenSlots(c *fiber.Ctx) error {
	slots, err := sheets.Default.GetOpenSlots(c.UserContext())
	if err != nil {
		log.Printf("getOpenSlots failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"details": "Check server logs for more information",
		})
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	return c.JSON(fiber.Map{"slots": slots})
}

// CreateSlot publishes a new open slot for the signed-in mentor. All
// validation happens here, before any remote call is made.
func CreateSlot(c *fiber.Ctx) error {
	id := middleware.Identity(c)
	if id.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User email not found in session",
		})
	}
	if id.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User name not found in session",
		})
	}

	req := new(models.SlotCreationRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid JSON in request body",
		})
	}
	if req.MentorEmail == "" {
		req.MentorEmail = id.Email
	}
	if req.MentorName == "" {
		req.MentorName = id.Name
	}

	if req.Date == "" || req.Start == "" || req.End == "" {
		details := map[string]string{}
		if req.Date == "" {
			details["date"] = "date is required (YYYY-MM-DD)"
		}
		if req.Start == "" {
			details["start"] = "start is required (HH:MM)"
		}
		if req.End == "" {
			details["end"] = "end is required (HH:MM)"
		}
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error:   "Missing required fields",
			Details: details,
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": slotValidationMessage(err),
		})
	}

	start, err := utils.MinutesSinceMidnight(req.Start)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid time format. Expected HH:MM",
		})
	}
	end, err := utils.MinutesSinceMidnight(req.End)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid time format. Expected HH:MM",
		})
	}
	if end <= start {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "End time must be after start time",
		})
	}

	slot, err := sheets.Default.CreateSlot(c.UserContext(), *req)
	if err != nil {
		log.Printf("createSlot failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"details": "Check server logs for more information",
		})
	}
	return c.JSON(fiber.Map{"slot": slot})
}

func slotValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "Date":
				return "Invalid date format. Expected YYYY-MM-DD"
			case "Start", "End":
				return "Invalid time format. Expected HH:MM"
			case "MentorEmail":
				return "Invalid mentor email"
			}
		}
	}
	return "Invalid request"
}
