package models

import (
	"time"

	"gorm.io/datatypes"
)

// ScheduleEntry is one weekly meeting of a class. Day may be stored either as
// the lowercase English name ("monday") or the single-character Korean form
// ("월"); both are legal and must be checked by the resolver.
type ScheduleEntry struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Class represents a class offering. Name is a display value and is not
// guaranteed unique; it only serves as a fallback join key when a fact row
// carries no class id.
type Class struct {
	ID          uint                               `gorm:"primaryKey" json:"id"`
	OrgID       uint                               `gorm:"index;not null" json:"org_id"`
	Name        string                             `gorm:"size:255;not null" json:"name"`
	Subject     string                             `gorm:"size:100" json:"subject"`
	TeacherName string                             `gorm:"size:255" json:"teacher_name"`
	Schedule    datatypes.JSONSlice[ScheduleEntry] `json:"schedule"`
	CreatedAt   time.Time                          `json:"created_at"`
	UpdatedAt   time.Time                          `json:"updated_at"`
}
