package dto

import "time"

// HomeworkStudentView is one enrolled student's standing against the latest
// homework of a class.
type HomeworkStudentView struct {
	StudentID   uint       `json:"student_id"`
	StudentName string     `json:"student_name"`
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submitted_at"`
	Score       *float64   `json:"score"`
}

// ClassHomeworkStatsView is the recomputed per-class homework summary.
type ClassHomeworkStatsView struct {
	ClassID        uint                  `json:"class_id"`
	ClassName      string                `json:"class_name"`
	TotalStudents  int                   `json:"total_students"`
	SubmittedCount int                   `json:"submitted_count"`
	SubmissionRate int                   `json:"submission_rate"`
	LastHomework   string                `json:"last_homework"`
	Students       []HomeworkStudentView `json:"students"`
}

// HomeworkOverviewView is the per-class listing plus the diagnostic count of
// homework rows that could not be associated with any class.
type HomeworkOverviewView struct {
	Classes         []ClassHomeworkStatsView `json:"classes"`
	UnassignedCount int                      `json:"unassigned_count"`
}
