package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hagwonhq/hagwon-api/internal/models"
	"github.com/hagwonhq/hagwon-api/internal/repository"
)

func classIDPtr(v uint) *uint {
	return &v
}

func TestHomeworkStatsRecomputesFromSubmissions(t *testing.T) {
	db := openTestDB(t)
	orgID := uint(4)

	students := []models.Student{
		{ID: 400, OrgID: orgID, Name: "Jiho"},
		{ID: 401, OrgID: orgID, Name: "Minseo"},
		{ID: 402, OrgID: orgID, Name: "Haeun"},
	}
	for i := range students {
		require.NoError(t, db.Create(&students[i]).Error)
	}

	classes := []models.Class{
		{ID: 40, OrgID: orgID, Name: "Algebra I", TeacherName: "Ms. Seo"},
		{ID: 41, OrgID: orgID, Name: "Biology"},
	}
	for i := range classes {
		require.NoError(t, db.Create(&classes[i]).Error)
	}

	enrollments := []models.Enrollment{
		{OrgID: orgID, ClassID: 40, StudentID: 400, Status: models.EnrollmentStatusActive},
		{OrgID: orgID, ClassID: 40, StudentID: 401, Status: models.EnrollmentStatusActive},
		{OrgID: orgID, ClassID: 41, StudentID: 402, Status: models.EnrollmentStatusActive},
	}
	for i := range enrollments {
		require.NoError(t, db.Create(&enrollments[i]).Error)
	}

	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	submittedAt := due.Add(-2 * time.Hour)
	homeworks := []models.Homework{
		// Stored counters are stale on purpose.
		{ID: 90, OrgID: orgID, ClassID: classIDPtr(40), Title: "Worksheet 3", DueDate: due, TotalStudents: 99, SubmittedCount: 0},
		// Legacy row associated only by class name.
		{ID: 91, OrgID: orgID, ClassName: "Biology", Title: "Lab Report", DueDate: due},
		// No association at all: Unassigned bucket, excluded from listing.
		{ID: 92, OrgID: orgID, Title: "Orphan", DueDate: due},
	}
	for i := range homeworks {
		require.NoError(t, db.Create(&homeworks[i]).Error)
	}

	submissions := []models.HomeworkSubmission{
		{HomeworkID: 90, StudentID: 400, Status: models.SubmissionStatusSubmitted, SubmittedAt: &submittedAt},
		// A student no longer enrolled anywhere; must not count.
		{HomeworkID: 90, StudentID: 999, Status: models.SubmissionStatusSubmitted, SubmittedAt: &submittedAt},
	}
	for i := range submissions {
		require.NoError(t, db.Create(&submissions[i]).Error)
	}

	svc := NewHomeworkStatsService(
		repository.NewClassRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewHomeworkRepository(db),
		zerolog.Nop(),
	)

	overview, err := svc.GetClassStats(context.Background(), orgID)
	require.NoError(t, err)
	require.Len(t, overview.Classes, 2)
	require.Equal(t, 1, overview.UnassignedCount)

	algebra := overview.Classes[0]
	require.Equal(t, uint(40), algebra.ClassID)
	require.Equal(t, 2, algebra.TotalStudents)
	require.Equal(t, 1, algebra.SubmittedCount)
	require.Equal(t, 50, algebra.SubmissionRate)
	require.Equal(t, "Worksheet 3", algebra.LastHomework)
	require.Len(t, algebra.Students, 2)
	require.Equal(t, models.SubmissionStatusSubmitted, algebra.Students[0].Status)
	require.Equal(t, models.SubmissionStatusNotSubmitted, algebra.Students[1].Status)

	biology := overview.Classes[1]
	require.Equal(t, uint(41), biology.ClassID)
	require.Equal(t, "Lab Report", biology.LastHomework)
	require.Equal(t, 1, biology.TotalStudents)
	require.Equal(t, 0, biology.SubmittedCount)
	require.Equal(t, 0, biology.SubmissionRate)
}
