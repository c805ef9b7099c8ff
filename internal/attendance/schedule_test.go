package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

func TestResolveScheduleDayCanonicalToken(t *testing.T) {
	entries := []models.ScheduleEntry{
		{Day: "monday", StartTime: "16:00", EndTime: "18:00"},
		{Day: "wednesday", StartTime: "16:00", EndTime: "18:00"},
	}

	entry := ResolveScheduleDay(entries, time.Monday)
	require.NotNil(t, entry)
	require.Equal(t, "monday", entry.Day)

	require.Nil(t, ResolveScheduleDay(entries, time.Tuesday))
}

func TestResolveScheduleDayKoreanFallback(t *testing.T) {
	entries := []models.ScheduleEntry{
		{Day: "월", StartTime: "10:00", EndTime: "12:00"},
		{Day: "토", StartTime: "09:00", EndTime: "11:00"},
	}

	entry := ResolveScheduleDay(entries, time.Monday)
	require.NotNil(t, entry)
	require.Equal(t, "10:00", entry.StartTime)

	entry = ResolveScheduleDay(entries, time.Saturday)
	require.NotNil(t, entry)
	require.Equal(t, "09:00", entry.StartTime)
}

func TestResolveScheduleDayPrefersCanonicalOverLocalized(t *testing.T) {
	entries := []models.ScheduleEntry{
		{Day: "월", StartTime: "08:00", EndTime: "09:00"},
		{Day: "monday", StartTime: "19:00", EndTime: "21:00"},
	}

	entry := ResolveScheduleDay(entries, time.Monday)
	require.NotNil(t, entry)
	require.Equal(t, "19:00", entry.StartTime)
}

func TestResolveScheduleDayDuplicateEntriesFirstWins(t *testing.T) {
	entries := []models.ScheduleEntry{
		{Day: "friday", StartTime: "14:00", EndTime: "15:00"},
		{Day: "friday", StartTime: "17:00", EndTime: "18:00"},
	}

	entry := ResolveScheduleDay(entries, time.Friday)
	require.NotNil(t, entry)
	require.Equal(t, "14:00", entry.StartTime)
}

func TestResolveScheduleDayEmptyList(t *testing.T) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		require.Nil(t, ResolveScheduleDay(nil, day))
		require.Nil(t, ResolveScheduleDay([]models.ScheduleEntry{}, day))
	}
}
