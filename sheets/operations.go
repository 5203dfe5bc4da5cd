package sheets

import (
	"context"
	"encoding/json"

	"github.com/campusmentor/booking-portal/models"
)

// Typed wrappers over Call, one per remote operation.

func (c *Client) GetOpenSlots(ctx context.Context) ([]models.Slot, error) {
	var slots []models.Slot
	if err := c.call(ctx, "getOpenSlots", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// BookSlot asks the backend to book atomically. On rejection the returned
// *CallError carries the backend's reason unchanged; the caller must not
// retry.
func (c *Client) BookSlot(ctx context.Context, slotID, studentID, studentName, studentEmail string) (*models.Booking, error) {
	params := map[string]any{
		"slotId":       slotID,
		"studentId":    studentID,
		"studentName":  studentName,
		"studentEmail": studentEmail,
	}
	var booking models.Booking
	if err := c.call(ctx, "bookSlot", params, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) CreateSlot(ctx context.Context, req models.SlotCreationRequest) (*models.Slot, error) {
	params := map[string]any{
		"mentorEmail": req.MentorEmail,
		"mentorName":  req.MentorName,
		"date":        req.Date,
		"start":       req.Start,
		"end":         req.End,
	}
	var slot models.Slot
	if err := c.call(ctx, "createSlot", params, &slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (c *Client) CancelSlot(ctx context.Context, slotID, mentorID string) error {
	return c.call(ctx, "cancelSlot", map[string]any{"slotId": slotID, "mentorId": mentorID}, nil)
}

func (c *Client) GetMentorSlots(ctx context.Context, mentorID string) ([]models.Slot, error) {
	var slots []models.Slot
	if err := c.call(ctx, "getMentorSlots", map[string]any{"mentorId": mentorID}, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *Client) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := c.call(ctx, "getBooking", map[string]any{"bookingId": bookingID}, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) GetStudentBookings(ctx context.Context, studentID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.call(ctx, "getStudentBookings", map[string]any{"studentId": studentID}, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetMentorByEmail returns (nil, nil) when the backend succeeds but knows no
// mentor with that email.
func (c *Client) GetMentorByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	resp := c.Call(ctx, "getMentorByEmail", map[string]any{"email": email})
	if !resp.Success {
		return nil, asCallError(resp)
	}
	raw := resp.Mentor
	if len(raw) == 0 {
		raw = resp.Data
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var mentor models.Mentor
	if err := json.Unmarshal(raw, &mentor); err != nil {
		return nil, &CallError{Message: "Sheets backend returned invalid data format"}
	}
	return &mentor, nil
}

func (c *Client) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.call(ctx, "getAllBookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) GetAllSlots(ctx context.Context) ([]models.Slot, error) {
	var slots []models.Slot
	if err := c.call(ctx, "getAllSlots", nil, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

func (c *Client) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats
	if err := c.call(ctx, "getAdminStats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) GetAllMentors(ctx context.Context) ([]models.Mentor, error) {
	var mentors []models.Mentor
	if err := c.call(ctx, "getAllMentors", nil, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}

func (c *Client) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := c.call(ctx, "getAllStudents", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}
