package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

func weekdaySchedule(days ...string) []models.ScheduleEntry {
	entries := make([]models.ScheduleEntry, 0, len(days))
	for _, day := range days {
		entries = append(entries, models.ScheduleEntry{Day: day, StartTime: "16:00", EndTime: "18:00"})
	}
	return entries
}

func TestBuildTodayRosterSkipsClassesNotMeetingToday(t *testing.T) {
	classes := []models.Class{
		{ID: 1, Name: "Algebra I", TeacherName: "Ms. Seo", Schedule: weekdaySchedule("monday")},
		{ID: 2, Name: "Biology", Schedule: weekdaySchedule("tuesday")},
		{ID: 3, Name: "Chemistry"}, // no schedule at all
	}
	enrollments := []models.Enrollment{
		{StudentID: 100, ClassID: 1, Status: models.EnrollmentStatusActive},
		{StudentID: 100, ClassID: 2, Status: models.EnrollmentStatusActive},
		{StudentID: 100, ClassID: 3, Status: models.EnrollmentStatusActive},
	}

	roster := BuildTodayRoster(enrollments, classes, time.Monday)
	require.Len(t, roster, 1)
	require.Equal(t, uint(1), roster[0].ClassID)
	require.Equal(t, "Ms. Seo", roster[0].TeacherName)
	require.Equal(t, "16:00-18:00", roster[0].ScheduledTime)

	// A class with an empty schedule list never contributes a roster entry,
	// whatever the day.
	for day := time.Sunday; day <= time.Saturday; day++ {
		for _, entry := range BuildTodayRoster(enrollments, classes, day) {
			require.NotEqual(t, uint(3), entry.ClassID)
		}
	}
}

func TestBuildTodayRosterIgnoresInactiveEnrollments(t *testing.T) {
	classes := []models.Class{{ID: 1, Name: "Algebra I", Schedule: weekdaySchedule("monday")}}
	enrollments := []models.Enrollment{
		{StudentID: 100, ClassID: 1, Status: "withdrawn"},
		{StudentID: 101, ClassID: 1, Status: models.EnrollmentStatusActive},
	}

	roster := BuildTodayRoster(enrollments, classes, time.Monday)
	require.Len(t, roster, 1)
	require.Equal(t, uint(101), roster[0].StudentID)
}

func TestBuildTodayRosterScheduledTimeRequiresBothBounds(t *testing.T) {
	classes := []models.Class{
		{ID: 1, Name: "Algebra I", Schedule: []models.ScheduleEntry{{Day: "monday", StartTime: "16:00"}}},
	}
	enrollments := []models.Enrollment{{StudentID: 100, ClassID: 1, Status: models.EnrollmentStatusActive}}

	roster := BuildTodayRoster(enrollments, classes, time.Monday)
	require.Len(t, roster, 1)
	require.Equal(t, "", roster[0].ScheduledTime)
}

func TestMergeDayDefaultsMissingRecordsToScheduled(t *testing.T) {
	roster := []RosterEntry{
		{StudentID: 100, StudentName: "Jiho", ClassID: 1, ClassName: "Algebra I"},
	}

	merged, err := MergeDay(roster, nil, nil)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	require.Equal(t, StatusScheduled, merged[0].Status)
	require.Len(t, merged[0].Classes, 1)
	require.Equal(t, StatusScheduled, merged[0].Classes[0].Status)
}

func TestMergeDayWorstStatusWinsAcrossClasses(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	roster := []RosterEntry{
		{StudentID: 100, StudentName: "Jiho", ClassID: 1, ClassName: "A"},
		{StudentID: 100, StudentName: "Jiho", ClassID: 2, ClassName: "B"},
	}
	records := []models.AttendanceRecord{
		{ID: 1, StudentID: 100, ClassID: 1, Date: date, Status: "present"},
		{ID: 2, StudentID: 100, ClassID: 2, Date: date, Status: "absent"},
	}

	merged, err := MergeDay(roster, records, nil)
	require.NoError(t, err)
	require.Len(t, merged, 1)
	require.Equal(t, StatusAbsent, merged[0].Status)
	require.Len(t, merged[0].Classes, 2)
	require.Equal(t, StatusPresent, merged[0].Classes[0].Status)
	require.Equal(t, StatusAbsent, merged[0].Classes[1].Status)
}

func TestMergeDayHealsNamesFromBatchLookup(t *testing.T) {
	roster := []RosterEntry{{StudentID: 100, ClassID: 1, ClassName: "A"}}

	require.Equal(t, []uint{100}, MissingStudentNames(roster))

	merged, err := MergeDay(roster, nil, map[uint]string{100: "Jiho"})
	require.NoError(t, err)
	require.Equal(t, "Jiho", merged[0].StudentName)
}

func TestMergeDayRejectsRecordsWithoutJoinKeys(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	roster := []RosterEntry{{StudentID: 100, ClassID: 1}}

	_, err := MergeDay(roster, []models.AttendanceRecord{{ID: 9, ClassID: 1, Date: date, Status: "present"}}, nil)
	require.ErrorIs(t, err, ErrMissingJoinKey)

	_, err = MergeDay(roster, []models.AttendanceRecord{{ID: 9, StudentID: 100, ClassID: 1, Status: "present"}}, nil)
	require.ErrorIs(t, err, ErrMissingJoinKey)
}

func TestWorstStatusOrder(t *testing.T) {
	require.Equal(t, StatusAbsent, Worst([]Status{StatusPresent, StatusAbsent, StatusExcused}))
	require.Equal(t, StatusLate, Worst([]Status{StatusScheduled, StatusLate, StatusPresent}))
	require.Equal(t, StatusScheduled, Worst(nil))

	// Unknown values never beat a known status.
	require.Equal(t, StatusExcused, Worst([]Status{Status("mystery"), StatusExcused}))
}
