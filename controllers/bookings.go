package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/campusmentor/booking-portal/middleware"
	"github.com/campusmentor/booking-portal/models"
	"github.com/campusmentor/booking-portal/sheets"
)

// BookSlot forwards a booking attempt exactly once. At-most-one-success for
// racing students is the remote service's guarantee; a rejection comes back
// with its reason untouched and is never retried here.
func BookSlot(c *fiber.Ctx) error {
	id := middleware.Identity(c)

	req := new(models.BookingRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	studentName := req.StudentName
	if studentName == "" {
		studentName = id.Name
	}
	studentEmail := req.StudentEmail
	if studentEmail == "" {
		studentEmail = id.Email
	}
	if req.SlotID == "" || studentName == "" || studentEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields: slotId, studentName, studentEmail",
		})
	}

	// Roll number is the canonical student id; OAuth subject and email are
	// the fallbacks.
	studentID := id.RollNumber
	if studentID == "" {
		studentID = id.Subject
	}
	if studentID == "" {
		studentID = studentEmail
	}

	booking, err := sheets.Default.BookSlot(c.UserContext(), req.SlotID, studentID, studentName, studentEmail)
	if err != nil {
		resp := fiber.Map{
			"success": false,
			"error":   err.Error(),
		}
		var callErr *sheets.CallError
		if errors.As(err, &callErr) && callErr.Reason != "" {
			resp["reason"] = callErr.Reason
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"booking": booking,
	})
}

// GetBookings lists a student's bookings.
func GetBookings(c *fiber.Ctx) error {
	studentID := c.Query("studentId")
	if studentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "studentId required",
		})
	}

	bookings, err := sheets.Default.GetStudentBookings(c.UserContext(), studentID)
	if err != nil {
		log.Printf("getStudentBookings failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return c.JSON(fiber.Map{"bookings": bookings})
}

// GetBookingByID fetches one booking record.
func GetBookingByID(c *fiber.Ctx) error {
	bookingID := c.Params("id")
	booking, err := sheets.Default.GetBooking(c.UserContext(), bookingID)
	if err != nil {
		log.Printf("getBooking failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"booking": booking})
}
