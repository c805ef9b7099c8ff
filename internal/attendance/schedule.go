package attendance

import (
	"strings"
	"time"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// Schedule entries arrive with the day written in either of two equivalent
// vocabularies: the lowercase English weekday name or the single-character
// Korean form. Both are legal in stored data and both must be checked.
var koreanDayByWeekday = map[time.Weekday]string{
	time.Sunday:    "일",
	time.Monday:    "월",
	time.Tuesday:   "화",
	time.Wednesday: "수",
	time.Thursday:  "목",
	time.Friday:    "금",
	time.Saturday:  "토",
}

// CanonicalDay returns the lowercase English token for a weekday.
func CanonicalDay(day time.Weekday) string {
	return strings.ToLower(day.String())
}

// ResolveScheduleDay finds the schedule entry for the given weekday, trying
// the canonical English token first and the Korean single-character form
// second. It returns nil when neither matches: the class simply does not meet
// that day, which callers must not treat as an error or paper over with an
// arbitrary entry. Duplicate entries for the same day are a data-entry quirk;
// the first match wins.
func ResolveScheduleDay(entries []models.ScheduleEntry, day time.Weekday) *models.ScheduleEntry {
	canonical := CanonicalDay(day)
	for i := range entries {
		if strings.EqualFold(strings.TrimSpace(entries[i].Day), canonical) {
			return &entries[i]
		}
	}

	localized := koreanDayByWeekday[day]
	for i := range entries {
		if strings.TrimSpace(entries[i].Day) == localized {
			return &entries[i]
		}
	}

	return nil
}
