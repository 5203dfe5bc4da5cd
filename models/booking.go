package models

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingNoShow    BookingStatus = "no-show"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is the record the remote service creates when a student reserves
// an open slot. Created and mutated entirely by the remote service.
type Booking struct {
	BookingID         string        `json:"booking_id"`
	SlotID            string        `json:"slot_id"`
	MentorID          string        `json:"mentor_id"`
	StudentID         string        `json:"student_id"`
	StudentEmail      string        `json:"student_email"`
	MentorEmail       string        `json:"mentor_email"`
	MeetLink          string        `json:"meet_link,omitempty"`
	CalendarEventID   string        `json:"calendar_event_id,omitempty"`
	CreatedAt         string        `json:"created_at"`
	FeedbackSent      string        `json:"feedback_sent"`      // Y or N
	FeedbackSubmitted string        `json:"feedback_submitted"` // Y or N
	Status            BookingStatus `json:"status"`
	Notes             string        `json:"notes,omitempty"`
}

// BookingRequest is the student-facing payload for POST /api/bookings.
// Name and email default from the session when absent.
type BookingRequest struct {
	SlotID       string `json:"slotId"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
}
