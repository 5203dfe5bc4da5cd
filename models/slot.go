package models

type SlotStatus string

const (
	SlotOpen      SlotStatus = "OPEN"
	SlotBooked    SlotStatus = "BOOKED"
	SlotCancelled SlotStatus = "CANCELLED"
)

// Slot is a mentor-defined bookable time window. Slots are owned by the
// spreadsheet-backed service; this application only renders fetched
// snapshots and submits mutation requests.
type Slot struct {
	SlotID                string     `json:"slot_id"`
	MentorID              string     `json:"mentor_id"`
	MentorName            string     `json:"mentor_name,omitempty"`
	Date                  string     `json:"date"` // YYYY-MM-DD
	EndDate               string     `json:"end_date,omitempty"` // set for slots spanning midnight
	StartTime             string     `json:"start_time"` // HH:MM
	EndTime               string     `json:"end_time"`   // HH:MM
	Status                SlotStatus `json:"status"`
	BookedBy              string     `json:"booked_by,omitempty"`
	StudentID             string     `json:"student_id,omitempty"`
	StudentEmail          string     `json:"student_email,omitempty"`
	MeetingLink           string     `json:"meeting_link,omitempty"`
	Topic                 string     `json:"topic,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
	FeedbackStatusMentor  string     `json:"feedback_status_mentor,omitempty"`
	FeedbackStatusStudent string     `json:"feedback_status_student,omitempty"`
	TimestampCreated      string     `json:"timestamp_created,omitempty"`
	TimestampBooked       string     `json:"timestamp_booked,omitempty"`
}

// SlotCreationRequest is the mentor-facing payload for POST /api/slots.
// Email and name default from the session when absent.
type SlotCreationRequest struct {
	MentorEmail string `json:"mentorEmail" validate:"omitempty,email"`
	MentorName  string `json:"mentorName"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Start       string `json:"start" validate:"required,datetime=15:04"`
	End         string `json:"end" validate:"required,datetime=15:04"`
}
