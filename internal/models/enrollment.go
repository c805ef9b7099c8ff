package models

import "time"

// EnrollmentStatusActive marks enrollments that count toward rosters.
const EnrollmentStatusActive = "active"

// Enrollment links a student to a class. Only active enrollments contribute
// to the expected-today roster; the row says nothing about whether the class
// actually meets on a given day.
type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrgID     uint      `gorm:"index;not null" json:"org_id"`
	ClassID   uint      `gorm:"index;not null" json:"class_id"`
	StudentID uint      `gorm:"index;not null" json:"student_id"`
	Status    string    `gorm:"size:20;default:active" json:"status"`
	Class     Class     `gorm:"foreignKey:ClassID" json:"class,omitempty"`
	Student   Student   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
