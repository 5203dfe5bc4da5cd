package models

// Mentor and Student are read-only directory records fetched from the
// spreadsheet-backed service.

type Mentor struct {
	MentorID    string `json:"mentor_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	CalendarID  string `json:"calendar_id,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type Student struct {
	StudentID          string `json:"student_id"` // roll number
	RollNumber         string `json:"roll_number,omitempty"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	College            string `json:"college,omitempty"`
	OptInNotifications string `json:"opt_in_notifications,omitempty"` // Y or N
	CreatedAt          string `json:"created_at,omitempty"`
}

// AdminStats is the aggregate the admin dashboard renders.
type AdminStats struct {
	TotalBookings     int `json:"totalBookings"`
	Completed         int `json:"completed"`
	NoShows           int `json:"noShows"`
	FeedbackSubmitted int `json:"feedbackSubmitted"`
}
