package report

import (
	"fmt"
	"strconv"
	"strings"

	"worklog-tracker/internal/models"
)

// Hours returns the decimal hours worked on a log. ok is false when the
// entry has no end time; the hours are then unknown and callers summing
// totals substitute zero. No midnight wraparound is applied here: an end
// time before the start time yields a negative result rather than being
// reinterpreted as crossing midnight. FormatDuration below does wrap, and
// the two are kept deliberately apart.
func Hours(log *models.WorkLog) (float64, bool) {
	if log.EndTime == nil || *log.EndTime == "" {
		return 0, false
	}

	startMinutes := minutesOfDay(log.StartTime)
	endMinutes := minutesOfDay(*log.EndTime)

	return float64(endMinutes-startMinutes) / 60, true
}

// FormatDuration renders a start/end pair for display, e.g. "3h" or "7h 30m".
// A missing end time renders as "-". A negative difference is treated as
// crossing midnight and a full day is added; this is a display convention
// only and is not used when summing hours for aggregation.
func FormatDuration(startTime string, endTime *string) string {
	if endTime == nil || *endTime == "" {
		return "-"
	}

	diff := minutesOfDay(*endTime) - minutesOfDay(startTime)
	if diff < 0 {
		diff += 24 * 60
	}

	hours := diff / 60
	minutes := diff % 60

	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// minutesOfDay converts an "HH:MM" or "HH:MM:SS" string to minutes since
// midnight. Seconds are ignored, matching the granularity of the entry form.
func minutesOfDay(s string) int {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}
