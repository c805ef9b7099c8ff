package attendance

import (
	"fmt"
	"time"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// RosterEntry is one (student, class) pair expected to meet on the queried
// day. The roster is derived on every read from enrollments and schedules and
// is never stored.
type RosterEntry struct {
	StudentID     uint
	StudentName   string
	ClassID       uint
	ClassName     string
	TeacherName   string
	ScheduledTime string
}

// BuildTodayRoster cross-products active enrollments with the schedule
// resolution for the given weekday. Enrollments whose class has no schedule
// entry for the day are skipped, not errored: a class simply not meeting today
// is normal. A student in several classes yields one entry per pair; the
// status merger aggregates later.
func BuildTodayRoster(enrollments []models.Enrollment, classes []models.Class, day time.Weekday) []RosterEntry {
	classByID := make(map[uint]models.Class, len(classes))
	for _, class := range classes {
		classByID[class.ID] = class
	}

	roster := make([]RosterEntry, 0, len(enrollments))
	for _, enrollment := range enrollments {
		if enrollment.Status != models.EnrollmentStatusActive {
			continue
		}

		class, ok := classByID[enrollment.ClassID]
		if !ok {
			continue
		}

		entry := ResolveScheduleDay(class.Schedule, day)
		if entry == nil {
			continue
		}

		roster = append(roster, RosterEntry{
			StudentID:     enrollment.StudentID,
			StudentName:   enrollment.Student.Name,
			ClassID:       class.ID,
			ClassName:     class.Name,
			TeacherName:   class.TeacherName,
			ScheduledTime: formatScheduledTime(entry.StartTime, entry.EndTime),
		})
	}

	return roster
}

// formatScheduledTime renders "{start}-{end}" only when both bounds exist;
// a missing bound yields the empty string rather than a guessed time.
func formatScheduledTime(start, end string) string {
	if start == "" || end == "" {
		return ""
	}
	return fmt.Sprintf("%s-%s", start, end)
}
