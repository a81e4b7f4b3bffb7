package engine

import (
	"testing"
	"time"

	"doctor-finder-server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appt(date, slot string, status models.AppointmentStatus) models.Appointment {
	return models.Appointment{Date: date, Time: slot, Status: status}
}

func TestClassify_FreshBookingIsUpcoming(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 59, 0, 0, time.UTC)
	b := Classify([]models.Appointment{
		appt("2026-03-10", "10:00 AM", models.StatusConfirmed),
	}, now)

	assert.Len(t, b.Upcoming, 1)
	assert.Empty(t, b.Past)
	assert.Empty(t, b.Cancelled)
}

func TestClassify_StaysUpcomingThroughGraceWindow(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	a := appt("2026-03-10", "10:00 AM", models.StatusConfirmed)

	// One minute before the grace window closes.
	b := Classify([]models.Appointment{a}, start.Add(GraceWindow-time.Minute))
	assert.Len(t, b.Upcoming, 1)

	// Exactly at the boundary the appointment moves to the past.
	b = Classify([]models.Appointment{a}, start.Add(GraceWindow))
	assert.Empty(t, b.Upcoming)
	assert.Len(t, b.Past, 1)
}

func TestClassify_CancelledIsTerminal(t *testing.T) {
	// A cancelled appointment stays cancelled whether its slot is in
	// the future or long gone.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := Classify([]models.Appointment{
		appt("2026-03-20", "10:00 AM", models.StatusCancelled),
		appt("2026-03-01", "10:00 AM", models.StatusCancelled),
	}, now)

	assert.Len(t, b.Cancelled, 2)
	assert.Empty(t, b.Upcoming)
	assert.Empty(t, b.Past)
}

func TestClassify_PartitionsEveryAppointmentExactlyOnce(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	appointments := []models.Appointment{
		appt("2026-03-11", "9:00 AM", models.StatusConfirmed),
		appt("2026-03-09", "9:00 AM", models.StatusConfirmed),
		appt("2026-03-10", "1:00 PM", models.StatusCancelled),
		appt("not-a-date", "9:00 AM", models.StatusConfirmed),
	}

	b := Classify(appointments, now)
	assert.Equal(t, len(appointments), len(b.Upcoming)+len(b.Past)+len(b.Cancelled))
}

func TestClassify_UnparseableRecordsLandInPast(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := Classify([]models.Appointment{
		appt("2026-03-15", "sometime", models.StatusConfirmed),
		appt("15/03/2026", "9:00 AM", models.StatusConfirmed),
	}, now)

	assert.Len(t, b.Past, 2)
	assert.Empty(t, b.Upcoming)
}

func TestDueForReminder_WindowBounds(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	inWindow := appt("2026-03-11", "9:00 AM", models.StatusConfirmed)
	beyond := appt("2026-03-12", "9:00 AM", models.StatusConfirmed)
	elapsed := appt("2026-03-10", "9:00 AM", models.StatusConfirmed)
	cancelled := appt("2026-03-11", "9:00 AM", models.StatusCancelled)

	due := DueForReminder([]models.Appointment{inWindow, beyond, elapsed, cancelled}, now)
	require.Len(t, due, 1)
	assert.Equal(t, inWindow.Date, due[0].Date)
	assert.Equal(t, models.StatusConfirmed, due[0].Status)
}

func TestDueForReminder_ExactHorizonIsIncluded(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	due := DueForReminder([]models.Appointment{
		appt("2026-03-11", "9:00 AM", models.StatusConfirmed),
	}, now)
	assert.Len(t, due, 1)
}

func TestAppointmentStart(t *testing.T) {
	a := appt("2026-03-10", "1:30 PM", models.StatusConfirmed)
	start, err := AppointmentStart(a, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 13, 30, 0, 0, time.UTC), start)

	_, err = AppointmentStart(appt("2026-03-10", "25:00 PM", models.StatusConfirmed), time.UTC)
	assert.Error(t, err)
}
