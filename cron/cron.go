package cron

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/campusmentor/booking-portal/models"
	"github.com/campusmentor/booking-portal/sheets"
	"github.com/campusmentor/booking-portal/utils"
)

// StartReminderJobs starts the scheduler that emails students about
// upcoming bookings.
func StartReminderJobs() {
	c := cron.New()
	// Run every minute to check for bookings in the next hour
	_, err := c.AddFunc("* * * * *", sendBookingReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron scheduler started for booking reminders")
}

var (
	sentMu        sync.Mutex
	sentReminders = map[string]time.Time{}
)

// sendBookingReminders checks confirmed bookings and sends one reminder per
// booking roughly an hour before its slot starts.
func sendBookingReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	bookings, err := sheets.Default.GetAllBookings(ctx)
	if err != nil {
		log.Printf("Error fetching bookings for reminders: %v", err)
		return
	}
	slots, err := sheets.Default.GetAllSlots(ctx)
	if err != nil {
		log.Printf("Error fetching slots for reminders: %v", err)
		return
	}
	slotsByID := make(map[string]models.Slot, len(slots))
	for _, slot := range slots {
		slotsByID[slot.SlotID] = slot
	}

	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	for _, booking := range bookings {
		if booking.Status != models.BookingConfirmed {
			continue
		}
		slot, ok := slotsByID[booking.SlotID]
		if !ok {
			continue
		}
		startAt, err := utils.SlotStart(slot.Date, slot.StartTime)
		if err != nil {
			continue
		}
		if startAt.Before(startWindow) || startAt.After(endWindow) {
			continue
		}
		if alreadySent(booking.BookingID) {
			continue
		}

		if err := sendReminderEmail(&booking, &slot); err != nil {
			log.Printf("Failed to send reminder for booking %s: %v", booking.BookingID, err)
			continue
		}
		markSent(booking.BookingID, now)
		log.Printf("Sent reminder for booking %s to %s", booking.BookingID, booking.StudentEmail)
	}

	pruneSent(now)
}

func sendReminderEmail(booking *models.Booking, slot *models.Slot) error {
	subject := fmt.Sprintf("Reminder: Upcoming Mentor Interview with %s", slot.MentorName)
	meetLink := booking.MeetLink
	if meetLink == "" {
		meetLink = slot.MeetingLink
	}
	body := fmt.Sprintf(`
		<p>Hi,</p>
		<p>This is a reminder for your mentor interview starting in about one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Mentor:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
			<li><strong>Meeting Link:</strong> %s</li>
		</ul>
		<p>Please join on time. If you can no longer attend, let your mentor know as soon as possible.</p>
		<p>Best regards,</p>
		<p>The Mentorship Team</p>
	`, slot.MentorName, slot.Date, slot.StartTime, slot.EndTime, meetLink)

	return utils.SendEmail(booking.StudentEmail, subject, body)
}

func alreadySent(bookingID string) bool {
	sentMu.Lock()
	defer sentMu.Unlock()
	_, ok := sentReminders[bookingID]
	return ok
}

func markSent(bookingID string, at time.Time) {
	sentMu.Lock()
	defer sentMu.Unlock()
	sentReminders[bookingID] = at
}

func pruneSent(now time.Time) {
	sentMu.Lock()
	defer sentMu.Unlock()
	for id, at := range sentReminders {
		if now.Sub(at) > 2*time.Hour {
			delete(sentReminders, id)
		}
	}
}
