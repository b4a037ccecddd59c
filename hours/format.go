package hours

import "fmt"

// formatMinuteOfDay renders a minute of day on the 12-hour clock.
func formatMinuteOfDay(minutes int) string {
	return formatClockTime(minutes/60, minutes%60)
}

// formatClockTime renders a 24-hour (hour, minute) pair as 12-hour text.
// The minute component is dropped entirely when zero: "1 PM", "1:30 PM",
// "12 AM" for midnight.
func formatClockTime(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	if minute == 0 {
		return fmt.Sprintf("%d %s", h, period)
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

// formatDuration composes the shared phrase for a minute delta: "50 min",
// "1 hour", "3h", "2h 15m". The minutes clause is dropped when zero.
func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	if minutes == 60 {
		return "1 hour"
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
