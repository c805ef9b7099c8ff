package models

import "time"

// Homework submission states.
const (
	SubmissionStatusSubmitted    = "submitted"
	SubmissionStatusLate         = "late"
	SubmissionStatusNotSubmitted = "not_submitted"
)

// Homework is an assignment handed out to a class. ClassID is authoritative
// when present; ClassName is a legacy fallback join key and may be the only
// association on older rows. TotalStudents and SubmittedCount are denormalized
// and can drift, so accurate figures are recomputed from submissions and
// current enrollments.
type Homework struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrgID          uint      `gorm:"index;not null" json:"org_id"`
	ClassID        *uint     `gorm:"index" json:"class_id"`
	ClassName      string    `gorm:"size:255" json:"class_name"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	DueDate        time.Time `json:"due_date"`
	TotalStudents  int       `json:"total_students"`
	SubmittedCount int       `json:"submitted_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HomeworkSubmission is one student's submission fact for a homework.
type HomeworkSubmission struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	HomeworkID  uint       `gorm:"index;not null" json:"homework_id"`
	StudentID   uint       `gorm:"index;not null" json:"student_id"`
	Status      string     `gorm:"size:20;default:not_submitted" json:"status"`
	SubmittedAt *time.Time `json:"submitted_at"`
	Score       *float64   `json:"score"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
