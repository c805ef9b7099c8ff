package models

import "time"

// AttendanceRecord is one observed check-in fact. Records are written by the
// check-in flow and are read-only here; a missing record for a roster entry is
// presented as "scheduled" in responses without ever being persisted.
type AttendanceRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrgID       uint      `gorm:"index;not null" json:"org_id"`
	ClassID     uint      `gorm:"index;not null" json:"class_id"`
	StudentID   uint      `gorm:"index;not null" json:"student_id"`
	StudentName string    `gorm:"size:255" json:"student_name"`
	Date        time.Time `gorm:"type:date;index;not null" json:"date"`
	Status      string    `gorm:"size:20;not null" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
