package engine

import (
	"time"

	"doctor-finder-server/internal/models"
)

// GraceWindow is how long after its nominal start an appointment is
// still considered to occupy the patient. Only after start+GraceWindow
// does a booking move to the past bucket.
const GraceWindow = 3 * time.Hour

// ReminderWindow is the lookahead for upcoming-appointment reminders.
const ReminderWindow = 24 * time.Hour

// Buckets partitions a user's appointments. Every cancelled
// appointment lands only in Cancelled; every other one in exactly one
// of Upcoming or Past.
type Buckets struct {
	Upcoming  []models.Appointment `json:"upcoming"`
	Past      []models.Appointment `json:"past"`
	Cancelled []models.Appointment `json:"cancelled"`
}

// Classify computes the read-time category of each appointment against
// the supplied instant. Nothing is persisted; two reads at different
// times may reclassify the same record.
func Classify(appointments []models.Appointment, now time.Time) Buckets {
	var b Buckets
	for _, a := range appointments {
		if a.Status == models.StatusCancelled {
			b.Cancelled = append(b.Cancelled, a)
			continue
		}

		start, err := AppointmentStart(a, now.Location())
		if err != nil {
			// A record whose stored date or time label no longer
			// parses cannot be upcoming; show it with the history.
			b.Past = append(b.Past, a)
			continue
		}

		if start.Add(GraceWindow).After(now) {
			b.Upcoming = append(b.Upcoming, a)
		} else {
			b.Past = append(b.Past, a)
		}
	}
	return b
}

// DueForReminder returns the non-cancelled appointments starting
// within ReminderWindow of now.
func DueForReminder(appointments []models.Appointment, now time.Time) []models.Appointment {
	var due []models.Appointment
	horizon := now.Add(ReminderWindow)
	for _, a := range appointments {
		if a.Status == models.StatusCancelled {
			continue
		}
		start, err := AppointmentStart(a, now.Location())
		if err != nil {
			continue
		}
		if start.After(now) && !start.After(horizon) {
			due = append(due, a)
		}
	}
	return due
}

// AppointmentStart combines an appointment's calendar date and slot
// label into a concrete local timestamp.
func AppointmentStart(a models.Appointment, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, a.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, ok := ParseSlotLabel(a.Time)
	if !ok {
		return time.Time{}, &time.ParseError{Layout: "H:MM AM/PM", Value: a.Time, Message: ": invalid slot label"}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}
