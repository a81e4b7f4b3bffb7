package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used on appointments and in
// slot requests.
const DateLayout = "2006-01-02"

// slotGrid returns the fixed bookable grid in display order: morning
// 9:00 AM through 12:00 PM on the half hour (12 deliberately has no
// :30 entry in the morning block) and afternoon 1:00 PM through
// 5:30 PM. 17 labels in total.
func slotGrid() []string {
	var slots []string
	for hour := 9; hour <= 12; hour++ {
		slots = append(slots, fmt.Sprintf("%d:00 AM", hour))
		if hour != 12 {
			slots = append(slots, fmt.Sprintf("%d:30 AM", hour))
		}
	}
	for hour := 1; hour <= 5; hour++ {
		slots = append(slots, fmt.Sprintf("%d:00 PM", hour))
		slots = append(slots, fmt.Sprintf("%d:30 PM", hour))
	}
	return slots
}

// GenerateSlots returns the bookable time labels for the given
// calendar date, in grid order. When the date is now's calendar date,
// slots at or before the current wall-clock time are pruned; any other
// date gets the full grid.
func GenerateSlots(date time.Time, now time.Time) []string {
	slots := slotGrid()

	sameDay := date.Year() == now.Year() && date.Month() == now.Month() && date.Day() == now.Day()
	if !sameDay {
		return slots
	}

	nowHour, nowMinute := now.Hour(), now.Minute()
	var remaining []string
	for _, label := range slots {
		hour, minute, ok := ParseSlotLabel(label)
		if !ok {
			continue
		}
		if hour > nowHour || (hour == nowHour && minute > nowMinute) {
			remaining = append(remaining, label)
		}
	}
	return remaining
}

// ParseSlotLabel converts a "H:MM AM/PM" label into a 24-hour
// (hour, minute) pair. All slot-time comparisons go through this so
// labels are never compared as strings.
func ParseSlotLabel(label string) (hour, minute int, ok bool) {
	timePart, meridiem, found := strings.Cut(strings.TrimSpace(label), " ")
	if !found {
		return 0, 0, false
	}
	hourStr, minuteStr, found := strings.Cut(timePart, ":")
	if !found {
		return 0, 0, false
	}

	h, err := strconv.Atoi(hourStr)
	if err != nil || h < 1 || h > 12 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(minuteStr)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}

	switch strings.ToUpper(meridiem) {
	case "AM":
		if h == 12 {
			h = 0
		}
	case "PM":
		if h != 12 {
			h += 12
		}
	default:
		return 0, 0, false
	}

	return h, m, true
}
