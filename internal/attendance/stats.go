package attendance

import (
	"math"
	"sort"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// DateLayout is the calendar-date format used throughout the aggregates.
const DateLayout = "2006-01-02"

// DailyStatusCount holds the per-status tallies for one calendar date.
type DailyStatusCount struct {
	Date    string
	Present int
	Late    int
	Absent  int
	Excused int
}

// WeeklyBreakdown groups attendance rows by calendar date and counts each
// observed status. Output is ordered ascending by date and contains only dates
// that actually have rows; zero-row dates are never synthesized.
func WeeklyBreakdown(records []models.AttendanceRecord) []DailyStatusCount {
	byDate := make(map[string]*DailyStatusCount)
	for _, record := range records {
		date := record.Date.Format(DateLayout)
		count, ok := byDate[date]
		if !ok {
			count = &DailyStatusCount{Date: date}
			byDate[date] = count
		}

		switch Status(record.Status) {
		case StatusPresent:
			count.Present++
		case StatusLate:
			count.Late++
		case StatusAbsent:
			count.Absent++
		case StatusExcused:
			count.Excused++
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	breakdown := make([]DailyStatusCount, 0, len(dates))
	for _, date := range dates {
		breakdown = append(breakdown, *byDate[date])
	}
	return breakdown
}

// StudentRate is one student's attendance tally over a rolling window.
type StudentRate struct {
	StudentID uint
	Name      string
	Present   int
	Late      int
	Absent    int
	Excused   int
	Rate      int
}

// StudentRates rolls attendance rows up per student. The rate is
// round(present / total * 100) where total counts the four observed statuses;
// synthesized scheduled rows never reach this function and stored ones do not
// count. A student with zero observed rows rates 0 rather than dividing by
// zero. Output is sorted by rate descending with student id ascending as the
// tie-break, truncated to limit when limit is positive.
func StudentRates(records []models.AttendanceRecord, namesByStudent map[uint]string, limit int) []StudentRate {
	byStudent := make(map[uint]*StudentRate)
	order := make([]uint, 0)

	for _, record := range records {
		rate, ok := byStudent[record.StudentID]
		if !ok {
			name := record.StudentName
			if name == "" {
				name = namesByStudent[record.StudentID]
			}
			rate = &StudentRate{StudentID: record.StudentID, Name: name}
			byStudent[record.StudentID] = rate
			order = append(order, record.StudentID)
		}
		if rate.Name == "" {
			if name := namesByStudent[record.StudentID]; name != "" {
				rate.Name = name
			}
		}

		switch Status(record.Status) {
		case StatusPresent:
			rate.Present++
		case StatusLate:
			rate.Late++
		case StatusAbsent:
			rate.Absent++
		case StatusExcused:
			rate.Excused++
		}
	}

	rates := make([]StudentRate, 0, len(order))
	for _, id := range order {
		rate := byStudent[id]
		rate.Rate = Percentage(rate.Present, rate.Present+rate.Late+rate.Absent+rate.Excused)
		rates = append(rates, *rate)
	}

	sort.Slice(rates, func(i, j int) bool {
		if rates[i].Rate != rates[j].Rate {
			return rates[i].Rate > rates[j].Rate
		}
		return rates[i].StudentID < rates[j].StudentID
	})

	if limit > 0 && len(rates) > limit {
		rates = rates[:limit]
	}
	return rates
}

// Percentage computes round(part / total * 100); a zero total yields 0.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
