package attendance

import (
	"time"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// HomeworkStudentStatus is one enrolled student's standing against the latest
// homework of a class.
type HomeworkStudentStatus struct {
	StudentID   uint
	StudentName string
	Status      string
	SubmittedAt *time.Time
	Score       *float64
}

// ClassHomeworkStats is the per-class homework submission summary. The student
// count and submitted count are recomputed from enrollments and submissions;
// the denormalized counters stored on the homework row are ignored because
// they drift.
type ClassHomeworkStats struct {
	ClassID        uint
	ClassName      string
	TotalStudents  int
	SubmittedCount int
	SubmissionRate int
	LastHomework   string
	Students       []HomeworkStudentStatus
}

// HomeworkOverview is the full per-class listing plus the diagnostic count of
// homework rows that resolved to no class at all. Unassigned rows are excluded
// from the listing but surfaced here so data-quality problems stay visible.
type HomeworkOverview struct {
	Classes         []ClassHomeworkStats
	UnassignedCount int
}

// BuildHomeworkOverview resolves every homework row to its class through the
// identity index, then summarizes each class against its most recent homework.
// The denominator is the current active enrollment of the class; the numerator
// counts enrolled students with a non-nil submitted_at, so submissions from
// students who have since left do not count, and it is clamped to the
// denominator to tolerate duplicate or legacy submission rows.
func BuildHomeworkOverview(index *ClassIndex, homeworks []models.Homework, submissions []models.HomeworkSubmission, enrollments []models.Enrollment) HomeworkOverview {
	homeworkByClass := make(map[uint][]models.Homework)
	unassigned := 0
	for _, homework := range homeworks {
		resolved := index.Resolve(homework.ClassID, homework.ClassName)
		if resolved.Source == SourceDefault {
			unassigned++
			continue
		}
		classID := resolved.Value.ID
		homeworkByClass[classID] = append(homeworkByClass[classID], homework)
	}

	submissionsByHomework := make(map[uint][]models.HomeworkSubmission)
	for _, submission := range submissions {
		submissionsByHomework[submission.HomeworkID] = append(submissionsByHomework[submission.HomeworkID], submission)
	}

	enrolledByClass := make(map[uint][]models.Enrollment)
	for _, enrollment := range enrollments {
		if enrollment.Status != models.EnrollmentStatusActive {
			continue
		}
		enrolledByClass[enrollment.ClassID] = append(enrolledByClass[enrollment.ClassID], enrollment)
	}

	overview := HomeworkOverview{Classes: make([]ClassHomeworkStats, 0, len(homeworkByClass)), UnassignedCount: unassigned}
	for _, class := range index.Classes() {
		classHomework := homeworkByClass[class.ID]
		if len(classHomework) == 0 {
			continue
		}

		latest := latestHomework(classHomework)
		enrolled := enrolledByClass[class.ID]

		students := make([]HomeworkStudentStatus, 0, len(enrolled))
		submitted := 0
		submissionByStudent := make(map[uint]models.HomeworkSubmission, len(submissionsByHomework[latest.ID]))
		for _, submission := range submissionsByHomework[latest.ID] {
			if _, exists := submissionByStudent[submission.StudentID]; !exists {
				submissionByStudent[submission.StudentID] = submission
			}
		}

		for _, enrollment := range enrolled {
			status := HomeworkStudentStatus{
				StudentID:   enrollment.StudentID,
				StudentName: enrollment.Student.Name,
				Status:      models.SubmissionStatusNotSubmitted,
			}
			if submission, ok := submissionByStudent[enrollment.StudentID]; ok {
				if submission.Status != "" {
					status.Status = submission.Status
				}
				status.SubmittedAt = submission.SubmittedAt
				status.Score = submission.Score
				if submission.SubmittedAt != nil {
					submitted++
				}
			}
			students = append(students, status)
		}

		total := len(enrolled)
		if submitted > total {
			submitted = total
		}

		overview.Classes = append(overview.Classes, ClassHomeworkStats{
			ClassID:        class.ID,
			ClassName:      class.Name,
			TotalStudents:  total,
			SubmittedCount: submitted,
			SubmissionRate: Percentage(submitted, total),
			LastHomework:   latest.Title,
			Students:       students,
		})
	}

	return overview
}

// latestHomework picks the homework with the latest due date; ties keep the
// earlier row in input order.
func latestHomework(homeworks []models.Homework) models.Homework {
	latest := homeworks[0]
	for _, homework := range homeworks[1:] {
		if homework.DueDate.After(latest.DueDate) {
			latest = homework
		}
	}
	return latest
}
